package routes

import (
	"github.com/learnhub/learnhub_backend/handlers"
	"github.com/learnhub/learnhub_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.Protected(), middleware.AdminRequired())

	users := admin.Group("/users")
	users.Get("", handlers.AdminListUsers)
	users.Put("/:id", handlers.AdminUpdateUser)
	users.Delete("/:id", handlers.AdminDeleteUser)
	users.Get("/:userId/enrollments", handlers.AdminGetUserEnrollments)

	courses := admin.Group("/courses")
	courses.Post("", handlers.AdminCreateCourse)
	courses.Put("/:id", handlers.AdminUpdateCourse)
	courses.Delete("/:id", handlers.AdminDeleteCourse)

	notes := admin.Group("/notes")
	notes.Post("", handlers.AdminCreateNote)
	notes.Put("/:id", handlers.AdminUpdateNote)
	notes.Delete("/:id", handlers.AdminDeleteNote)

	contacts := admin.Group("/contacts")
	contacts.Get("", handlers.AdminListContacts)
	contacts.Patch("/:id/status", handlers.AdminUpdateContactStatus)
}
