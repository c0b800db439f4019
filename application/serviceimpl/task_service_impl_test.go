package serviceimpl

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/repositories"
	"taskboard/pkg/validation"
)

// fakeTaskRepo จำลอง ordering semantics ของ postgres repository
// ในหน่วยความจำ เพื่อทดสอบ service โดยไม่ต้องมีฐานข้อมูล
type fakeTaskRepo struct {
	nextID uint
	tasks  map[uint]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uint]*models.Task)}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	if !validation.IsValidID(task.UserID) {
		return models.ErrInvalidUserID
	}
	if !task.Status.IsValid() {
		return models.ErrInvalidStatus
	}

	order := 0
	for _, existing := range r.tasks {
		if existing.UserID == task.UserID && existing.Order >= order {
			order = existing.Order + 1
		}
	}

	r.nextID++
	task.ID = r.nextID
	task.Order = order

	stored := *task
	r.tasks[task.ID] = &stored
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id uint) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, models.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) ListByUser(_ context.Context, userID uint, _ []models.TaskSortKey, statuses []models.TaskStatus) ([]*models.Task, error) {
	if statuses != nil {
		if len(statuses) == 0 {
			return nil, models.ErrFilteringByInexistentStatus
		}
		for _, status := range statuses {
			if !status.IsValid() {
				return nil, models.ErrFilteringByInexistentStatus
			}
		}
	}

	var tasks []*models.Task
	for _, task := range r.tasks {
		if task.UserID != userID {
			continue
		}
		if statuses != nil && !containsStatus(statuses, task.Status) {
			continue
		}
		copied := *task
		tasks = append(tasks, &copied)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Order < tasks[j].Order })
	return tasks, nil
}

func containsStatus(statuses []models.TaskStatus, status models.TaskStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

func (r *fakeTaskRepo) UpdateFields(_ context.Context, id, userID uint, fields repositories.TaskFieldUpdate) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return nil, models.ErrTaskNotFound
	}
	if fields.Title != nil {
		task.Title = *fields.Title
	}
	if fields.Description != nil {
		task.Description = fields.Description
	}
	if fields.Status != nil {
		if !fields.Status.IsValid() {
			return nil, models.ErrInvalidStatus
		}
		task.Status = *fields.Status
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id, userID uint) (int64, error) {
	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return 0, nil
	}
	delete(r.tasks, id)
	return 1, nil
}

func (r *fakeTaskRepo) MoveToPosition(_ context.Context, taskID uint, position int, userID uint) ([]*models.Task, error) {
	if position < 0 {
		return nil, models.ErrInvalidPosition
	}
	task, ok := r.tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, models.ErrTaskNotFound
	}
	previous := task.Order
	if previous == position {
		return nil, models.ErrTaskSwapWithItself
	}

	var moved []*models.Task
	for _, candidate := range r.tasks {
		if candidate.UserID != userID {
			continue
		}
		switch {
		case candidate.ID == taskID:
			candidate.Order = position
		case position < previous && candidate.Order >= position && candidate.Order < previous:
			candidate.Order++
		case position > previous && candidate.Order > previous && candidate.Order <= position:
			candidate.Order--
		default:
			continue
		}
		copied := *candidate
		moved = append(moved, &copied)
	}
	return moved, nil
}

func (r *fakeTaskRepo) SwapOrder(_ context.Context, aTaskID, bTaskID, userID uint) ([]*models.Task, error) {
	a, okA := r.tasks[aTaskID]
	b, okB := r.tasks[bTaskID]
	if !okA || !okB || a.UserID != userID || b.UserID != userID {
		return []*models.Task{}, nil
	}

	a.Order, b.Order = b.Order, a.Order
	copiedA, copiedB := *a, *b
	return []*models.Task{&copiedA, &copiedB}, nil
}

func (r *fakeTaskRepo) UpdateStatuses(_ context.Context, ids []uint, status models.TaskStatus, userID uint) ([]*models.Task, error) {
	if !validation.IsValidIDs(ids) {
		return nil, models.ErrInvalidTaskIDs
	}
	if !status.IsValid() {
		return nil, models.ErrInvalidStatus
	}

	existing := 0
	for _, id := range ids {
		task, ok := r.tasks[id]
		if !ok {
			continue
		}
		if task.UserID != userID {
			return nil, models.ErrUnauthorizedStatusesUpdate
		}
		existing++
	}
	if existing != len(ids) {
		return nil, models.ErrBatchSomeTasksDontExist
	}

	var updated []*models.Task
	for _, id := range ids {
		r.tasks[id].Status = status
		copied := *r.tasks[id]
		updated = append(updated, &copied)
	}
	return updated, nil
}

func newTestService(t *testing.T) (*fakeTaskRepo, *TaskServiceImpl) {
	t.Helper()
	repo := newFakeTaskRepo()
	return repo, &TaskServiceImpl{taskRepo: repo}
}

func createTask(t *testing.T, svc *TaskServiceImpl, userID uint, title string) *models.Task {
	t.Helper()
	task, err := svc.CreateTask(context.Background(), userID, &dto.CreateTaskRequest{Title: title})
	require.NoError(t, err)
	return task
}

func TestCreateTaskAssignsNextPosition(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	a := createTask(t, svc, 1, "first")
	b := createTask(t, svc, 1, "second")
	c := createTask(t, svc, 1, "third")

	assert.Equal(t, 0, a.Order)
	assert.Equal(t, 1, b.Order)
	assert.Equal(t, 2, c.Order)
	assert.Equal(t, models.TaskStatusToDo, a.Status, "status defaults to TO_DO")

	// ลำดับนับแยกต่อ user
	other, err := svc.CreateTask(ctx, 2, &dto.CreateTaskRequest{Title: "other user"})
	require.NoError(t, err)
	assert.Equal(t, 0, other.Order)
}

func ordersByID(t *testing.T, svc *TaskServiceImpl, userID uint) map[uint]int {
	t.Helper()
	tasks, err := svc.ListTasks(context.Background(), userID, nil, nil)
	require.NoError(t, err)
	orders := make(map[uint]int, len(tasks))
	for _, task := range tasks {
		orders[task.ID] = task.Order
	}
	return orders
}

func TestMoveTaskToFront(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	a := createTask(t, svc, 1, "task a") // 0
	b := createTask(t, svc, 1, "task b") // 1
	c := createTask(t, svc, 1, "task c") // 2

	moved, err := svc.MoveTaskToPosition(ctx, 1, c.ID, 0)
	require.NoError(t, err)
	assert.Len(t, moved, 3)

	orders := ordersByID(t, svc, 1)
	assert.Equal(t, 0, orders[c.ID])
	assert.Equal(t, 1, orders[a.ID])
	assert.Equal(t, 2, orders[b.ID])
}

func TestMoveTaskForward(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	a := createTask(t, svc, 1, "task a") // 0
	b := createTask(t, svc, 1, "task b") // 1
	c := createTask(t, svc, 1, "task c") // 2

	moved, err := svc.MoveTaskToPosition(ctx, 1, a.ID, 2)
	require.NoError(t, err)
	assert.Len(t, moved, 3)

	orders := ordersByID(t, svc, 1)
	assert.Equal(t, 0, orders[b.ID])
	assert.Equal(t, 1, orders[c.ID])
	assert.Equal(t, 2, orders[a.ID])
}

func TestMoveTaskToOwnPositionRejected(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	createTask(t, svc, 1, "task a")
	b := createTask(t, svc, 1, "task b")

	_, err := svc.MoveTaskToPosition(ctx, 1, b.ID, b.Order)
	assert.ErrorIs(t, err, models.ErrTaskSwapWithItself)
}

func TestMoveTaskNegativePositionRejected(t *testing.T) {
	_, svc := newTestService(t)

	createTask(t, svc, 1, "task a")
	b := createTask(t, svc, 1, "task b")

	_, err := svc.MoveTaskToPosition(context.Background(), 1, b.ID, -1)
	assert.ErrorIs(t, err, models.ErrInvalidPosition)
}

func TestMoveForeignTaskDenied(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	mine := createTask(t, svc, 1, "mine")
	createTask(t, svc, 2, "theirs")

	_, err := svc.MoveTaskToPosition(ctx, 2, mine.ID, 0)
	// denial ออกมาเป็น not found ไม่บอกว่า task มีอยู่
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}

func TestSwapTasksRoundTrip(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	a := createTask(t, svc, 1, "task a")
	b := createTask(t, svc, 1, "task b")

	swapped, err := svc.SwapTasks(ctx, 1, a.ID, b.ID)
	require.NoError(t, err)
	assert.Len(t, swapped, 2)

	orders := ordersByID(t, svc, 1)
	assert.Equal(t, b.Order, orders[a.ID])
	assert.Equal(t, a.Order, orders[b.ID])

	// swap ซ้ำอีกครั้งต้องกลับสภาพเดิม
	_, err = svc.SwapTasks(ctx, 1, a.ID, b.ID)
	require.NoError(t, err)

	orders = ordersByID(t, svc, 1)
	assert.Equal(t, a.Order, orders[a.ID])
	assert.Equal(t, b.Order, orders[b.ID])
}

func TestSwapTaskWithItselfRejected(t *testing.T) {
	_, svc := newTestService(t)

	a := createTask(t, svc, 1, "task a")

	_, err := svc.SwapTasks(context.Background(), 1, a.ID, a.ID)
	assert.ErrorIs(t, err, models.ErrTaskSwapWithItself)
}

func TestSwapForeignTaskDenied(t *testing.T) {
	_, svc := newTestService(t)

	mine := createTask(t, svc, 1, "mine")
	theirs := createTask(t, svc, 2, "theirs")

	_, err := svc.SwapTasks(context.Background(), 1, mine.ID, theirs.ID)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}

func TestBatchUpdateStatusesAllOrNothing(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	a := createTask(t, svc, 1, "task a")
	b := createTask(t, svc, 1, "task b")

	// id ที่ไม่มีอยู่ทำให้ทั้ง batch ถูกปฏิเสธ
	_, err := svc.BatchUpdateStatuses(ctx, 1, []uint{a.ID, b.ID, 999}, models.TaskStatusDone)
	assert.ErrorIs(t, err, models.ErrBatchSomeTasksDontExist)

	tasks, err := svc.ListTasks(ctx, 1, nil, nil)
	require.NoError(t, err)
	for _, task := range tasks {
		assert.Equal(t, models.TaskStatusToDo, task.Status, "no partial write")
	}

	updated, err := svc.BatchUpdateStatuses(ctx, 1, []uint{a.ID, b.ID}, models.TaskStatusDone)
	require.NoError(t, err)
	assert.Len(t, updated, 2)
	for _, task := range updated {
		assert.Equal(t, models.TaskStatusDone, task.Status)
	}
}

func TestBatchUpdateStatusesForeignTaskRejected(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	mine := createTask(t, svc, 1, "mine")
	theirs := createTask(t, svc, 2, "theirs")

	_, err := svc.BatchUpdateStatuses(ctx, 1, []uint{mine.ID, theirs.ID}, models.TaskStatusArchived)
	assert.ErrorIs(t, err, models.ErrUnauthorizedStatusesUpdate)

	// ของตัวเองก็ต้องไม่ถูกแก้
	task, err := svc.GetTask(ctx, 1, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusToDo, task.Status)
}

func TestUpdateTaskPartialFields(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	task := createTask(t, svc, 1, "original title")

	newTitle := "updated title"
	updated, err := svc.UpdateTask(ctx, 1, task.ID, &dto.UpdateTaskRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, models.TaskStatusToDo, updated.Status, "unset fields stay unchanged")

	status := string(models.TaskStatusInProgress)
	updated, err = svc.UpdateTask(ctx, 1, task.ID, &dto.UpdateTaskRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusInProgress, updated.Status)
	assert.Equal(t, newTitle, updated.Title)

	// foreign update เป็น not found
	_, err = svc.UpdateTask(ctx, 2, task.ID, &dto.UpdateTaskRequest{Title: &newTitle})
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}

func TestGetForeignTaskDenied(t *testing.T) {
	_, svc := newTestService(t)

	mine := createTask(t, svc, 1, "mine")

	_, err := svc.GetTask(context.Background(), 2, mine.ID)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	mine := createTask(t, svc, 1, "mine")

	// foreign delete เป็น not found
	err := svc.DeleteTask(ctx, 2, mine.ID)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)

	require.NoError(t, svc.DeleteTask(ctx, 1, mine.ID))

	_, err = svc.GetTask(ctx, 1, mine.ID)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}

func TestListTasksEmptyStatusFilterRejected(t *testing.T) {
	_, svc := newTestService(t)

	_, err := svc.ListTasks(context.Background(), 1, nil, []models.TaskStatus{})
	assert.ErrorIs(t, err, models.ErrFilteringByInexistentStatus)

	_, err = svc.ListTasks(context.Background(), 1, nil, []models.TaskStatus{"NOT_A_STATUS"})
	assert.ErrorIs(t, err, models.ErrFilteringByInexistentStatus)
}

func TestGetGroupedTasks(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	a := createTask(t, svc, 1, "task a")
	createTask(t, svc, 1, "task b")

	_, err := svc.BatchUpdateStatuses(ctx, 1, []uint{a.ID}, models.TaskStatusDone)
	require.NoError(t, err)

	grouped, err := svc.GetGroupedTasks(ctx, 1, nil, nil)
	require.NoError(t, err)

	assert.Len(t, grouped.Done, 1)
	assert.Len(t, grouped.ToDo, 1)
	assert.Empty(t, grouped.InProgress)
	assert.Empty(t, grouped.Archived)
}
