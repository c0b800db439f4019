package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/domain/models"
)

func TestTaskToTaskResponse(t *testing.T) {
	assert.Nil(t, TaskToTaskResponse(nil))

	description := "details"
	now := time.Now()
	task := &models.Task{
		ID:          7,
		Title:       "a task",
		Description: &description,
		Status:      models.TaskStatusInProgress,
		Order:       3,
		UserID:      1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	resp := TaskToTaskResponse(task)
	require.NotNil(t, resp)
	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, "a task", resp.Title)
	assert.Equal(t, &description, resp.Description)
	assert.Equal(t, models.TaskStatusInProgress, resp.Status)
	assert.Equal(t, 3, resp.Order)
	assert.Equal(t, uint(1), resp.UserID)
}

func TestGroupedTasksToResponse(t *testing.T) {
	grouped := models.GroupTasksByStatus([]*models.Task{
		{ID: 1, Status: models.TaskStatusToDo},
		{ID: 2, Status: models.TaskStatusDone},
	})

	resp := GroupedTasksToResponse(grouped)
	require.NotNil(t, resp)
	assert.Len(t, resp.ToDo, 1)
	assert.Len(t, resp.Done, 1)
	// bucket ว่างต้อง serialize เป็น [] ไม่ใช่ null
	assert.NotNil(t, resp.InProgress)
	assert.NotNil(t, resp.Archived)
}

func TestUserToUserResponseOmitsPassword(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@b.c", Name: "Alice", Password: "hash"}

	resp := UserToUserResponse(user)
	require.NotNil(t, resp)
	assert.Equal(t, "a@b.c", resp.Email)
	assert.Equal(t, "Alice", resp.Name)
}
