package repositories

import (
	"context"

	"taskboard/domain/models"
)

// TaskFieldUpdate carries the optional field changes of an update.
// Nil means "leave unchanged".
type TaskFieldUpdate struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
}

type TaskRepository interface {
	// Create inserts the task and assigns "order" from the user's
	// current maximum inside the same statement.
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	// ListByUser applies the mapped sort keys in the given order, all
	// ascending. A nil statuses slice means no filter; an empty or
	// invalid one is rejected.
	ListByUser(ctx context.Context, userID uint, sortedBy []models.TaskSortKey, statuses []models.TaskStatus) ([]*models.Task, error)
	UpdateFields(ctx context.Context, id, userID uint, fields TaskFieldUpdate) (*models.Task, error)
	// Delete returns the number of rows removed (0 or 1).
	Delete(ctx context.Context, id, userID uint) (int64, error)
	// MoveToPosition shifts every task between the target and the
	// current position by one slot and drops the task on the target,
	// all in one bulk statement. Returns the rewritten rows.
	MoveToPosition(ctx context.Context, taskID uint, position int, userID uint) ([]*models.Task, error)
	// SwapOrder exchanges the order values of two tasks in a single
	// statement guarded by existence and ownership predicates.
	SwapOrder(ctx context.Context, aTaskID, bTaskID, userID uint) ([]*models.Task, error)
	// UpdateStatuses applies the status to all ids or to none.
	UpdateStatuses(ctx context.Context, ids []uint, status models.TaskStatus, userID uint) ([]*models.Task, error)
}
