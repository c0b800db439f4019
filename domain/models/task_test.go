package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatusIsValid(t *testing.T) {
	for _, status := range AllTaskStatuses {
		assert.True(t, status.IsValid(), "status %s", status)
	}

	assert.False(t, TaskStatus("").IsValid())
	assert.False(t, TaskStatus("DELETED").IsValid())
	assert.False(t, TaskStatus("to_do").IsValid())
}

func TestTaskSortKeyColumn(t *testing.T) {
	tests := []struct {
		key    TaskSortKey
		column string
	}{
		{TaskSortCreatedAt, "created_at"},
		{TaskSortUpdatedAt, "updated_at"},
		{TaskSortOrder, `"order"`},
		{TaskSortStatus, "status"},
		{TaskSortTitle, "title"},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			column, err := tt.key.Column()
			require.NoError(t, err)
			assert.Equal(t, tt.column, column)
		})
	}
}

func TestTaskSortKeyColumnUnknown(t *testing.T) {
	// unknown key ต้อง error ไม่ fallback เงียบๆ
	for _, key := range []TaskSortKey{"", "PRIORITY", "order", "created_at"} {
		_, err := key.Column()
		assert.ErrorIs(t, err, ErrInvalidSortKey, "key %q", key)
	}
}

func TestGroupTasksByStatusEmptyInput(t *testing.T) {
	grouped := GroupTasksByStatus(nil)

	require.NotNil(t, grouped)
	// ทุก bucket ต้องมีเสมอ เป็น empty slice ไม่ใช่ nil
	assert.NotNil(t, grouped.Archived)
	assert.NotNil(t, grouped.Done)
	assert.NotNil(t, grouped.InProgress)
	assert.NotNil(t, grouped.ToDo)
	assert.Empty(t, grouped.Archived)
	assert.Empty(t, grouped.Done)
	assert.Empty(t, grouped.InProgress)
	assert.Empty(t, grouped.ToDo)
}

func TestGroupTasksByStatusPreservesOrder(t *testing.T) {
	tasks := []*Task{
		{ID: 1, Status: TaskStatusToDo, Order: 0},
		{ID: 2, Status: TaskStatusDone, Order: 1},
		{ID: 3, Status: TaskStatusToDo, Order: 2},
		{ID: 4, Status: TaskStatusInProgress, Order: 3},
		{ID: 5, Status: TaskStatusToDo, Order: 4},
	}

	grouped := GroupTasksByStatus(tasks)

	require.Len(t, grouped.ToDo, 3)
	assert.Equal(t, uint(1), grouped.ToDo[0].ID)
	assert.Equal(t, uint(3), grouped.ToDo[1].ID)
	assert.Equal(t, uint(5), grouped.ToDo[2].ID)

	require.Len(t, grouped.Done, 1)
	assert.Equal(t, uint(2), grouped.Done[0].ID)

	require.Len(t, grouped.InProgress, 1)
	assert.Equal(t, uint(4), grouped.InProgress[0].ID)

	assert.Empty(t, grouped.Archived)
}
