package handlers

import (
	"fmt"

	config "github.com/learnhub/learnhub_backend/configs"
	"github.com/learnhub/learnhub_backend/database"
	"github.com/learnhub/learnhub_backend/models"
	"github.com/learnhub/learnhub_backend/notifications"
	"github.com/gofiber/fiber/v2"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// SubmitContact is the one unauthenticated write endpoint: the public
// contact form.
func SubmitContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactStatusPending,
	}
	if err := database.DB.Create(&contact).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error, please try again later"})
	}

	if adminEmail := config.Config("ADMIN_EMAIL"); adminEmail != "" {
		go notifications.SendEmail("Admin", adminEmail, "New contact form submission",
			fmt.Sprintf("<h1>%s</h1><p>From: %s &lt;%s&gt;</p><p>%s</p>",
				contact.Subject, contact.Name, contact.Email, contact.Message))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Contact form submitted successfully"})
}
