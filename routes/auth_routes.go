package routes

import (
	"github.com/learnhub/learnhub_backend/handlers"
	"github.com/learnhub/learnhub_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)
	auth.Get("/profile", middleware.Protected(), handlers.GetProfile)

	// Legacy dashboard path kept for the existing client.
	user := app.Group("/api/user", middleware.Protected())
	user.Get("/dashboard", handlers.GetProfile)
}
