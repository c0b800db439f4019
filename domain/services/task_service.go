package services

import (
	"context"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

type TaskService interface {
	ListTasks(ctx context.Context, userID uint, sortedBy []models.TaskSortKey, withStatuses []models.TaskStatus) ([]*models.Task, error)
	GetGroupedTasks(ctx context.Context, userID uint, sortedBy []models.TaskSortKey, withStatuses []models.TaskStatus) (*models.GroupedTasks, error)
	GetTask(ctx context.Context, userID, taskID uint) (*models.Task, error)
	CreateTask(ctx context.Context, userID uint, req *dto.CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uint, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uint) error
	MoveTaskToPosition(ctx context.Context, userID, taskID uint, position int) ([]*models.Task, error)
	SwapTasks(ctx context.Context, userID, aTaskID, bTaskID uint) ([]*models.Task, error)
	BatchUpdateStatuses(ctx context.Context, userID uint, taskIDs []uint, status models.TaskStatus) ([]*models.Task, error)
}
