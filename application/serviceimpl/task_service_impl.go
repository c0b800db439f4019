package serviceimpl

import (
	"context"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/infrastructure/redis"
	"taskboard/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	cache    *redis.TaskCache // nil เมื่อไม่ได้เปิด Redis
}

func NewTaskService(taskRepo repositories.TaskRepository, cache *redis.TaskCache) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		cache:    cache,
	}
}

// ownedTask is the single ownership guard used by every operation that
// touches one task: fetch, then compare owners. A foreign task is
// reported as not found, never as a permission error.
func (s *TaskServiceImpl) ownedTask(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		logger.InfoContext(ctx, "Cross-user task access denied", "task_id", taskID, "user_id", userID)
		return nil, models.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) invalidateCache(ctx context.Context, userID uint) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, userID uint, sortedBy []models.TaskSortKey, withStatuses []models.TaskStatus) ([]*models.Task, error) {
	// cache เฉพาะ default listing เท่านั้น
	cacheable := s.cache != nil && len(sortedBy) == 0 && withStatuses == nil
	if cacheable {
		if tasks, ok := s.cache.Get(ctx, userID); ok {
			return tasks, nil
		}
	}

	tasks, err := s.taskRepo.ListByUser(ctx, userID, sortedBy, withStatuses)
	if err != nil {
		logger.WarnContext(ctx, "Failed to list tasks", "user_id", userID, "error", err)
		return nil, err
	}

	if cacheable {
		s.cache.Set(ctx, userID, tasks)
	}
	return tasks, nil
}

func (s *TaskServiceImpl) GetGroupedTasks(ctx context.Context, userID uint, sortedBy []models.TaskSortKey, withStatuses []models.TaskStatus) (*models.GroupedTasks, error) {
	tasks, err := s.ListTasks(ctx, userID, sortedBy, withStatuses)
	if err != nil {
		return nil, err
	}
	return models.GroupTasksByStatus(tasks), nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	return s.ownedTask(ctx, userID, taskID)
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uint, req *dto.CreateTaskRequest) (*models.Task, error) {
	status := models.TaskStatusToDo
	if req.Status != "" {
		status = models.TaskStatus(req.Status)
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		UserID:      userID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.WarnContext(ctx, "Task creation failed", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID, "order", task.Order)
	s.invalidateCache(ctx, userID)

	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, userID, taskID uint, req *dto.UpdateTaskRequest) (*models.Task, error) {
	fields := repositories.TaskFieldUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		fields.Status = &status
	}

	// ownership มากับ scoped predicate (id AND user_id) ใน repo
	task, err := s.taskRepo.UpdateFields(ctx, taskID, userID, fields)
	if err != nil {
		logger.WarnContext(ctx, "Task update failed", "task_id", taskID, "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID, "user_id", userID)
	s.invalidateCache(ctx, userID)

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uint) error {
	deleted, err := s.taskRepo.Delete(ctx, taskID, userID)
	if err != nil {
		logger.WarnContext(ctx, "Task deletion failed", "task_id", taskID, "user_id", userID, "error", err)
		return err
	}
	if deleted == 0 {
		logger.InfoContext(ctx, "Task deletion matched nothing", "task_id", taskID, "user_id", userID)
		return models.ErrTaskNotFound
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)
	s.invalidateCache(ctx, userID)
	return nil
}

func (s *TaskServiceImpl) MoveTaskToPosition(ctx context.Context, userID, taskID uint, position int) ([]*models.Task, error) {
	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if task.Order == position {
		logger.InfoContext(ctx, "No-op move rejected: same origin as destination", "task_id", taskID, "position", position)
		return nil, models.ErrTaskSwapWithItself
	}

	moved, err := s.taskRepo.MoveToPosition(ctx, taskID, position, userID)
	if err != nil {
		logger.WarnContext(ctx, "Task move failed", "task_id", taskID, "position", position, "error", err)
		return nil, err
	}
	// existence ผ่านการตรวจแล้ว ถ้าไม่มีแถวถูกแก้แปลว่าพัง
	if len(moved) == 0 {
		logger.ErrorContext(ctx, "Task move affected no rows", "task_id", taskID, "position", position, "user_id", userID)
		return nil, models.ErrUnknown
	}

	logger.InfoContext(ctx, "Task moved", "task_id", taskID, "position", position, "rows", len(moved))
	s.invalidateCache(ctx, userID)

	return moved, nil
}

func (s *TaskServiceImpl) SwapTasks(ctx context.Context, userID, aTaskID, bTaskID uint) ([]*models.Task, error) {
	if aTaskID == bTaskID {
		return nil, models.ErrTaskSwapWithItself
	}

	// ตรวจทั้งสอง task ก่อน ไม่พึ่ง row count ของ update อย่างเดียว
	if _, err := s.ownedTask(ctx, userID, aTaskID); err != nil {
		return nil, err
	}
	if _, err := s.ownedTask(ctx, userID, bTaskID); err != nil {
		return nil, err
	}

	swapped, err := s.taskRepo.SwapOrder(ctx, aTaskID, bTaskID, userID)
	if err != nil {
		logger.WarnContext(ctx, "Task swap failed", "a_task_id", aTaskID, "b_task_id", bTaskID, "error", err)
		return nil, err
	}
	if len(swapped) == 0 {
		logger.ErrorContext(ctx, "Task swap affected no rows", "a_task_id", aTaskID, "b_task_id", bTaskID, "user_id", userID)
		return nil, models.ErrUnknown
	}

	logger.InfoContext(ctx, "Tasks swapped", "a_task_id", aTaskID, "b_task_id", bTaskID)
	s.invalidateCache(ctx, userID)

	return swapped, nil
}

func (s *TaskServiceImpl) BatchUpdateStatuses(ctx context.Context, userID uint, taskIDs []uint, status models.TaskStatus) ([]*models.Task, error) {
	updated, err := s.taskRepo.UpdateStatuses(ctx, taskIDs, status, userID)
	if err != nil {
		logger.WarnContext(ctx, "Batch status update rejected", "user_id", userID, "task_ids", taskIDs, "status", status, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Batch status update applied", "user_id", userID, "count", len(updated), "status", status)
	s.invalidateCache(ctx, userID)

	return updated, nil
}
