package models

import (
	"time"
)

// TaskStatus ค่าสถานะของ task (closed set)
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "TO_DO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
	TaskStatusArchived   TaskStatus = "ARCHIVED"
)

// AllTaskStatuses ทุกสถานะ เรียงตาม key ใน grouped response
var AllTaskStatuses = []TaskStatus{
	TaskStatusArchived,
	TaskStatusDone,
	TaskStatusInProgress,
	TaskStatusToDo,
}

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusDone, TaskStatusArchived:
		return true
	}
	return false
}

// TaskSortKey sort criterion ที่ client ส่งมาได้
type TaskSortKey string

const (
	TaskSortCreatedAt TaskSortKey = "CREATED_AT"
	TaskSortUpdatedAt TaskSortKey = "UPDATED_AT"
	TaskSortOrder     TaskSortKey = "ORDER"
	TaskSortStatus    TaskSortKey = "STATUS"
	TaskSortTitle     TaskSortKey = "TITLE"
)

// Column maps the sort key to its storage column. The mapping is total
// over the closed set; anything else is ErrInvalidSortKey, never a
// silent fallback.
func (k TaskSortKey) Column() (string, error) {
	switch k {
	case TaskSortCreatedAt:
		return "created_at", nil
	case TaskSortUpdatedAt:
		return "updated_at", nil
	case TaskSortOrder:
		return `"order"`, nil
	case TaskSortStatus:
		return "status", nil
	case TaskSortTitle:
		return "title", nil
	}
	return "", ErrInvalidSortKey
}

// Task งานของ user หนึ่งคน "order" เป็น ranking key ที่ unique ต่อ user
// (constraint เป็น deferrable ดู postgres.Migrate)
type Task struct {
	ID          uint       `gorm:"primaryKey"`
	Title       string     `gorm:"not null"`
	Description *string
	Status      TaskStatus `gorm:"type:varchar(16);not null;default:'TO_DO'"`
	Order       int        `gorm:"column:order;type:smallint;not null"`
	UserID      uint       `gorm:"not null;index"`
	User        User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}

// GroupedTasks tasks แยกเป็น bucket ตามสถานะ ทุก bucket มีเสมอ
type GroupedTasks struct {
	Archived   []*Task
	Done       []*Task
	InProgress []*Task
	ToDo       []*Task
}

// GroupTasksByStatus partitions an already-sorted task list into the
// four status buckets, keeping the input order within each bucket.
// Empty buckets come back as empty slices, not nil.
func GroupTasksByStatus(tasks []*Task) *GroupedTasks {
	grouped := &GroupedTasks{
		Archived:   []*Task{},
		Done:       []*Task{},
		InProgress: []*Task{},
		ToDo:       []*Task{},
	}
	for _, task := range tasks {
		switch task.Status {
		case TaskStatusArchived:
			grouped.Archived = append(grouped.Archived, task)
		case TaskStatusDone:
			grouped.Done = append(grouped.Done, task)
		case TaskStatusInProgress:
			grouped.InProgress = append(grouped.InProgress, task)
		case TaskStatusToDo:
			grouped.ToDo = append(grouped.ToDo, task)
		}
	}
	return grouped
}
