package handler

import "github.com/gofiber/fiber/v3"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.Health)
	app.Get("/", h.Index)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// Index lists the available endpoints, mirroring the service's landing page.
func (h *HealthHandler) Index(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Welcome to account-hub",
		"status":  "Backend is running!",
		"endpoints": fiber.Map{
			"auth": fiber.Map{
				"register": "POST /auth/register",
				"login":    "POST /auth/login",
			},
			"users": fiber.Map{
				"getAll":  "GET /users",
				"getById": "GET /users/:id",
				"update":  "PUT /users/:id",
				"delete":  "DELETE /users/:id",
			},
		},
	})
}
