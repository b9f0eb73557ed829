package routes

import (
	"github.com/learnhub/learnhub_backend/handlers"
	"github.com/gofiber/fiber/v2"
)

func CourseRoutes(app *fiber.App) {
	courses := app.Group("/api/courses")

	courses.Get("", handlers.ListCourses)
	courses.Get("/:id", handlers.GetCourse)
}
