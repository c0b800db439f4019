package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/domain/models"
	"taskboard/pkg/validation"
)

// Order-value statements. Everything here leans on the deferred
// UNIQUE(user_id, "order") constraint (see Migrate): a single bulk
// update may pass through duplicate order values mid-statement, and the
// store only checks uniqueness when the transaction commits.

// insertTaskSQL computes the next position inside the insert itself, so
// there is no read-max-then-insert race window.
const insertTaskSQL = `
INSERT INTO tasks (title, description, status, user_id, "order", created_at, updated_at)
VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX("order") + 1, 0) FROM tasks WHERE user_id = ?), NOW(), NOW())
RETURNING id, "order", created_at, updated_at`

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	if !validation.IsValidID(task.UserID) {
		return models.ErrInvalidUserID
	}
	if !validation.IsValidString(&task.Title, taskTitleMinLength) {
		return models.ErrInvalidTitle
	}
	if !task.Status.IsValid() {
		return models.ErrInvalidStatus
	}

	return r.db.WithContext(ctx).
		Raw(insertTaskSQL, task.Title, task.Description, task.Status, task.UserID, task.UserID).
		Scan(task).Error
}

// shiftUpSQL: ย้ายถอยหลัง (target < previous) ดัน [target, previous)
// ขึ้นหนึ่งช่อง แล้ววาง task ลงที่ target ใน statement เดียว
const shiftUpSQL = `
UPDATE tasks
SET "order" = CASE id WHEN ? THEN ? ELSE "order" + 1 END,
    updated_at = NOW()
WHERE user_id = ? AND "order" >= ? AND "order" <= ?
RETURNING *`

// shiftDownSQL: mirrored rule สำหรับย้ายไปข้างหน้า (target > previous)
const shiftDownSQL = `
UPDATE tasks
SET "order" = CASE id WHEN ? THEN ? ELSE "order" - 1 END,
    updated_at = NOW()
WHERE user_id = ? AND "order" >= ? AND "order" <= ?
RETURNING *`

func (r *TaskRepositoryImpl) MoveToPosition(ctx context.Context, taskID uint, position int, userID uint) ([]*models.Task, error) {
	if !validation.IsValidID(taskID) {
		return nil, models.ErrInvalidTaskID
	}
	if !validation.IsValidID(userID) {
		return nil, models.ErrInvalidUserID
	}
	// ตำแหน่งเริ่มที่ 0 เสมอ ติดลบไม่มีความหมาย
	if position < 0 {
		return nil, models.ErrInvalidPosition
	}

	var moved []*models.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current struct {
			Order int
		}
		err := tx.Model(&models.Task{}).Select(`"order"`).
			Where("id = ? AND user_id = ?", taskID, userID).
			Take(&current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrTaskNotFound
			}
			return err
		}

		if current.Order == position {
			return models.ErrTaskSwapWithItself
		}

		if position < current.Order {
			return tx.Raw(shiftUpSQL,
				taskID, position, userID, position, current.Order,
			).Scan(&moved).Error
		}
		return tx.Raw(shiftDownSQL,
			taskID, position, userID, current.Order, position,
		).Scan(&moved).Error
	})
	if err != nil {
		return nil, err
	}
	return moved, nil
}

// swapOrderSQL exchanges the two rows' order values in one statement.
// The correlated subselects read the pre-update snapshot, and the count
// guards make the whole update a no-op unless both tasks exist and
// belong to the user.
const swapOrderSQL = `
UPDATE tasks
SET "order" = CASE id
      WHEN ? THEN (SELECT "order" FROM tasks WHERE id = ?)
      WHEN ? THEN (SELECT "order" FROM tasks WHERE id = ?)
    END,
    updated_at = NOW()
WHERE id IN (?, ?) AND user_id = ?
  AND (SELECT count(id) FROM tasks WHERE user_id = ? AND id = ?) = 1
  AND (SELECT count(id) FROM tasks WHERE user_id = ? AND id = ?) = 1
RETURNING *`

func (r *TaskRepositoryImpl) SwapOrder(ctx context.Context, aTaskID, bTaskID, userID uint) ([]*models.Task, error) {
	if !validation.IsValidID(aTaskID) || !validation.IsValidID(bTaskID) {
		return nil, models.ErrInvalidTaskID
	}
	if !validation.IsValidID(userID) {
		return nil, models.ErrInvalidUserID
	}
	if aTaskID == bTaskID {
		return nil, models.ErrTaskSwapWithItself
	}

	var swapped []*models.Task
	err := r.db.WithContext(ctx).Raw(swapOrderSQL,
		aTaskID, bTaskID,
		bTaskID, aTaskID,
		aTaskID, bTaskID, userID,
		userID, aTaskID,
		userID, bTaskID,
	).Scan(&swapped).Error
	if err != nil {
		return nil, err
	}
	return swapped, nil
}

const batchStatusUpdateSQL = `
UPDATE tasks
SET status = ?, updated_at = NOW()
WHERE id IN ? AND user_id = ?
RETURNING *`

// UpdateStatuses is all-or-nothing: one id belonging to another user or
// not existing at all rejects the whole batch before anything is
// written.
func (r *TaskRepositoryImpl) UpdateStatuses(ctx context.Context, ids []uint, status models.TaskStatus, userID uint) ([]*models.Task, error) {
	if !validation.IsValidIDs(ids) {
		return nil, models.ErrInvalidTaskIDs
	}
	if !status.IsValid() {
		return nil, models.ErrInvalidStatus
	}
	if !validation.IsValidID(userID) {
		return nil, models.ErrInvalidUserID
	}

	var updated []*models.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owners []struct {
			ID     uint
			UserID uint
		}
		if err := tx.Model(&models.Task{}).Select("id", "user_id").
			Where("id IN ?", ids).
			Find(&owners).Error; err != nil {
			return err
		}

		for _, owner := range owners {
			if owner.UserID != userID {
				return models.ErrUnauthorizedStatusesUpdate
			}
		}
		if len(owners) != len(ids) {
			return models.ErrBatchSomeTasksDontExist
		}

		// user_id scope ซ้ำอีกชั้นแม้ตรวจ owner แล้ว
		return tx.Raw(batchStatusUpdateSQL, status, ids, userID).Scan(&updated).Error
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
