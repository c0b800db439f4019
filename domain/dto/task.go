package dto

import (
	"time"

	"taskboard/domain/models"
)

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Status      string  `json:"status" validate:"omitempty,oneof=TO_DO IN_PROGRESS DONE ARCHIVED"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Status      *string `json:"status" validate:"omitempty,oneof=TO_DO IN_PROGRESS DONE ARCHIVED"`
}

// MoveTaskRequest position เป็น pointer เพราะ 0 เป็นตำแหน่งที่ valid
type MoveTaskRequest struct {
	Position *int `json:"position" validate:"required"`
}

type SwapTasksRequest struct {
	ATaskID uint `json:"aTaskId" validate:"required"`
	BTaskID uint `json:"bTaskId" validate:"required"`
}

type BatchUpdateStatusRequest struct {
	TaskIDs []uint `json:"taskIds" validate:"required,min=1,dive,required"`
	Status  string `json:"status" validate:"required,oneof=TO_DO IN_PROGRESS DONE ARCHIVED"`
}

type TaskResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Status      models.TaskStatus `json:"status"`
	Order       int               `json:"order"`
	UserID      uint              `json:"userId"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// GroupedTasksResponse key ตรงกับชื่อสถานะ ทุก key มีเสมอแม้ bucket ว่าง
type GroupedTasksResponse struct {
	Archived   []TaskResponse `json:"ARCHIVED"`
	Done       []TaskResponse `json:"DONE"`
	InProgress []TaskResponse `json:"IN_PROGRESS"`
	ToDo       []TaskResponse `json:"TO_DO"`
}
