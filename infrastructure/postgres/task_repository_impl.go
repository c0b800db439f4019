package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"taskboard/domain/models"
	"taskboard/domain/repositories"
	"taskboard/pkg/validation"
)

// default sort ของ task list: ranking ก่อน แล้วค่อย created_at, title
var defaultTaskSortColumns = []string{`"order"`, "created_at", "title"}

const taskTitleMinLength = 3

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	if !validation.IsValidID(id) {
		return nil, models.ErrInvalidTaskID
	}

	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) ListByUser(ctx context.Context, userID uint, sortedBy []models.TaskSortKey, statuses []models.TaskStatus) ([]*models.Task, error) {
	if !validation.IsValidID(userID) {
		return nil, models.ErrInvalidUserID
	}

	sortColumns := defaultTaskSortColumns
	if len(sortedBy) != 0 {
		sortColumns = make([]string, len(sortedBy))
		for i, key := range sortedBy {
			column, err := key.Column()
			if err != nil {
				return nil, err
			}
			sortColumns[i] = column
		}
	}

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	// nil = ไม่ filter; slice ว่างหรือมีสถานะที่ไม่รู้จัก = reject
	if statuses != nil {
		if len(statuses) == 0 {
			return nil, models.ErrFilteringByInexistentStatus
		}
		for _, status := range statuses {
			if !status.IsValid() {
				return nil, models.ErrFilteringByInexistentStatus
			}
		}
		query = query.Where("status IN ?", statuses)
	}

	var tasks []*models.Task
	// columns มาจาก closed mapping เท่านั้น ต่อ string ได้
	err := query.Order(strings.Join(sortColumns, ", ")).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) UpdateFields(ctx context.Context, id, userID uint, fields repositories.TaskFieldUpdate) (*models.Task, error) {
	if !validation.IsValidID(id) {
		return nil, models.ErrInvalidTaskID
	}
	if !validation.IsValidID(userID) {
		return nil, models.ErrInvalidUserID
	}
	if fields.Title != nil && !validation.IsValidString(fields.Title, taskTitleMinLength) {
		return nil, models.ErrInvalidTitle
	}
	if fields.Status != nil && !fields.Status.IsValid() {
		return nil, models.ErrInvalidStatus
	}

	updates := map[string]interface{}{
		"updated_at": gorm.Expr("NOW()"),
	}
	if fields.Title != nil {
		updates["title"] = *fields.Title
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.Status != nil {
		updates["status"] = *fields.Status
	}

	result := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	// scoped predicate matched nothing: not found หรือของ user อื่น
	// แยกไม่ออกโดยตั้งใจ
	if result.RowsAffected == 0 {
		return nil, models.ErrTaskNotFound
	}

	var task models.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id, userID uint) (int64, error) {
	if !validation.IsValidID(id) || !validation.IsValidID(userID) {
		return 0, models.ErrMissingFields
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Task{})
	return result.RowsAffected, result.Error
}
