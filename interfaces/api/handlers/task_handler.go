package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// taskErrorResponse แปลง domain error เป็น HTTP response
// ownership denial ออกเป็น 404 เสมอ ไม่บอกว่า row มีอยู่หรือไม่
func taskErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrTaskNotFound):
		return utils.NotFoundResponse(c, "Task not found")
	case errors.Is(err, models.ErrUserNotFound):
		return utils.NotFoundResponse(c, "User not found")
	case errors.Is(err, models.ErrUnauthorizedStatusesUpdate):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, models.ErrInvalidTaskID),
		errors.Is(err, models.ErrInvalidTaskIDs),
		errors.Is(err, models.ErrInvalidUserID),
		errors.Is(err, models.ErrInvalidTitle),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidSortKey),
		errors.Is(err, models.ErrInvalidPosition),
		errors.Is(err, models.ErrMissingFields),
		errors.Is(err, models.ErrFilteringByInexistentStatus),
		errors.Is(err, models.ErrTaskSwapWithItself),
		errors.Is(err, models.ErrBatchSomeTasksDontExist):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c)
	}
}

// parseSortKeys อ่าน ?sortedBy= (comma separated) เป็น sort keys
// ไม่ส่ง param มา = nil (default sort)
func parseSortKeys(c *fiber.Ctx) []models.TaskSortKey {
	raw, present := c.Queries()["sortedBy"]
	if !present {
		return nil
	}
	keys := []models.TaskSortKey{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		keys = append(keys, models.TaskSortKey(part))
	}
	return keys
}

// parseStatusFilter อ่าน ?withStatuses= โดยแยก "absent" (nil, ไม่ filter)
// ออกจาก "present but empty" (empty slice ซึ่ง service ปฏิเสธ)
func parseStatusFilter(c *fiber.Ctx) []models.TaskStatus {
	raw, present := c.Queries()["withStatuses"]
	if !present {
		return nil
	}
	statuses := []models.TaskStatus{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		statuses = append(statuses, models.TaskStatus(part))
	}
	return statuses
}

func parseTaskID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, models.ErrInvalidTaskID
	}
	return uint(id), nil
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	tasks, err := h.taskService.ListTasks(ctx, user.ID, parseSortKeys(c), parseStatusFilter(c))
	if err != nil {
		logger.WarnContext(ctx, "Task listing failed", "user_id", user.ID, "error", err)
		return taskErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) GetGroupedTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	grouped, err := h.taskService.GetGroupedTasks(ctx, user.ID, parseSortKeys(c), parseStatusFilter(c))
	if err != nil {
		logger.WarnContext(ctx, "Grouped task listing failed", "user_id", user.ID, "error", err)
		return taskErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.GroupedTasksToResponse(grouped))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetTask(ctx, user.ID, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task fetch failed", "task_id", taskID, "error", err)
		return taskErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	logger.InfoContext(ctx, "Task creation attempt", "user_id", user.ID, "title", req.Title)

	task, err := h.taskService.CreateTask(ctx, user.ID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task creation failed", "user_id", user.ID, "error", err)
		return taskErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", user.ID)

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	logger.InfoContext(ctx, "Task update attempt", "task_id", taskID, "user_id", user.ID)

	task, err := h.taskService.UpdateTask(ctx, user.ID, taskID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task update failed", "task_id", taskID, "error", err)
		return taskErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID)

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	logger.InfoContext(ctx, "Task deletion attempt", "task_id", taskID, "user_id", user.ID)

	if err := h.taskService.DeleteTask(ctx, user.ID, taskID); err != nil {
		logger.WarnContext(ctx, "Task deletion failed", "task_id", taskID, "error", err)
		return taskErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)

	return utils.NoContentResponse(c)
}

func (h *TaskHandler) MoveTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.MoveTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	logger.InfoContext(ctx, "Task move attempt",
		"task_id", taskID, "user_id", user.ID, "position", *req.Position)

	moved, err := h.taskService.MoveTaskToPosition(ctx, user.ID, taskID, *req.Position)
	if err != nil {
		logger.WarnContext(ctx, "Task move failed", "task_id", taskID, "error", err)
		return taskErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Task moved", "task_id", taskID, "affected", len(moved))

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(moved))
}

func (h *TaskHandler) SwapTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.SwapTasksRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	logger.InfoContext(ctx, "Task swap attempt",
		"a_task_id", req.ATaskID, "b_task_id", req.BTaskID, "user_id", user.ID)

	swapped, err := h.taskService.SwapTasks(ctx, user.ID, req.ATaskID, req.BTaskID)
	if err != nil {
		logger.WarnContext(ctx, "Task swap failed",
			"a_task_id", req.ATaskID, "b_task_id", req.BTaskID, "error", err)
		return taskErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Tasks swapped", "a_task_id", req.ATaskID, "b_task_id", req.BTaskID)

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(swapped))
}

func (h *TaskHandler) BatchUpdateStatuses(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.BatchUpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	logger.InfoContext(ctx, "Batch status update attempt",
		"user_id", user.ID, "task_count", len(req.TaskIDs), "status", req.Status)

	updated, err := h.taskService.BatchUpdateStatuses(ctx, user.ID, req.TaskIDs, models.TaskStatus(req.Status))
	if err != nil {
		logger.WarnContext(ctx, "Batch status update failed", "user_id", user.ID, "error", err)
		return taskErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Batch status update done", "user_id", user.ID, "updated", len(updated))

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(updated))
}
