package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
	"taskboard/interfaces/api/middleware"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	tasks := api.Group("/tasks")
	tasks.Use(middleware.Protected())
	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Get("/grouped", h.TaskHandler.GetGroupedTasks)
	tasks.Post("/", h.TaskHandler.CreateTask)
	// batch operations ก่อน :id ไม่งั้น fiber จับเป็น param
	tasks.Post("/swap", h.TaskHandler.SwapTasks)
	tasks.Put("/statuses", h.TaskHandler.BatchUpdateStatuses)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Put("/:id", h.TaskHandler.UpdateTask)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
	tasks.Put("/:id/position", h.TaskHandler.MoveTask)
}
