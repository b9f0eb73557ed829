package routes

import (
	"github.com/learnhub/learnhub_backend/handlers"
	"github.com/learnhub/learnhub_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func EnrollmentRoutes(app *fiber.App) {
	enrollments := app.Group("/api/enrollments", middleware.Protected())

	enrollments.Get("/my-enrollments", handlers.GetMyEnrollments)
	enrollments.Get("/check/:courseId", handlers.CheckEnrollment)
	enrollments.Post("/enroll-free/:courseId", handlers.EnrollFree)
	enrollments.Post("/create-payment/:courseId", handlers.CreatePayment)
	enrollments.Post("/complete-payment/:enrollmentId", handlers.CompletePayment)
}
