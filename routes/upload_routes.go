package routes

import (
	"github.com/learnhub/learnhub_backend/handlers"
	"github.com/learnhub/learnhub_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App) {
	uploads := app.Group("/api/uploads", middleware.Protected())

	uploads.Get("/signature", handlers.GenerateUploadSignature)
}
