package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
	"taskboard/interfaces/api/middleware"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers) {
	users := api.Group("/users")
	users.Use(middleware.Protected())
	users.Get("/me", h.UserHandler.GetProfile)
	users.Put("/me", h.UserHandler.UpdateProfile)
	users.Delete("/me", h.UserHandler.DeleteAccount)
}
