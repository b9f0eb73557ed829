package routes

import (
	"github.com/learnhub/learnhub_backend/handlers"
	"github.com/learnhub/learnhub_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func NoteRoutes(app *fiber.App) {
	notes := app.Group("/api/notes")

	notes.Get("", handlers.ListNotes)
	notes.Get("/course/:courseName", handlers.GetNotesByCourse)
	notes.Get("/:id", handlers.GetNote)

	notes.Post("", middleware.Protected(), handlers.CreateNote)
	notes.Put("/:id", middleware.Protected(), handlers.UpdateNote)
	notes.Delete("/:id", middleware.Protected(), handlers.DeleteNote)
}
