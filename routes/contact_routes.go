package routes

import (
	"github.com/learnhub/learnhub_backend/handlers"
	"github.com/gofiber/fiber/v2"
)

func ContactRoutes(app *fiber.App) {
	app.Post("/api/contact", handlers.SubmitContact)
}
