package dto

import (
	"taskboard/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Order:       task.Order,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *TaskToTaskResponse(task)
	}
	return responses
}

func GroupedTasksToResponse(grouped *models.GroupedTasks) *GroupedTasksResponse {
	if grouped == nil {
		return nil
	}
	return &GroupedTasksResponse{
		Archived:   TasksToTaskResponses(grouped.Archived),
		Done:       TasksToTaskResponses(grouped.Done),
		InProgress: TasksToTaskResponses(grouped.InProgress),
		ToDo:       TasksToTaskResponses(grouped.ToDo),
	}
}
