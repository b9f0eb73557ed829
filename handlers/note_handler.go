package handlers

import (
	"errors"

	"github.com/learnhub/learnhub_backend/database"
	"github.com/learnhub/learnhub_backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateNoteRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Course      string `json:"course" validate:"required"`
	FileURL     string `json:"fileUrl" validate:"required,url"`
	FileType    string `json:"fileType,omitempty"`
}

type UpdateNoteRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Course      *string `json:"course"`
	FileURL     *string `json:"fileUrl"`
	FileType    *string `json:"fileType"`
}

func ListNotes(c *fiber.Ctx) error {
	var notes []models.Note
	err := database.DB.Preload("UploadedBy").
		Where("is_active = ?", true).
		Order("created_at desc").
		Find(&notes).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(notes)
}

func GetNotesByCourse(c *fiber.Ctx) error {
	courseName := c.Params("courseName")

	var notes []models.Note
	err := database.DB.
		Where("course = ? AND is_active = ?", courseName, true).
		Order("created_at desc").
		Find(&notes).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(notes)
}

func GetNote(c *fiber.Ctx) error {
	noteID := c.Params("id")
	if _, err := uuid.Parse(noteID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid note ID format"})
	}

	var note models.Note
	if err := database.DB.Preload("UploadedBy").First(&note, "id = ?", noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Note not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(note)
}

func CreateNote(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	note := models.Note{
		Title:        req.Title,
		Description:  req.Description,
		Course:       req.Course,
		FileURL:      req.FileURL,
		FileType:     req.FileType,
		UploadedByID: userID,
		IsActive:     true,
	}
	if note.FileType == "" {
		note.FileType = "PDF"
	}

	if err := database.DB.Create(&note).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create note"})
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

func UpdateNote(c *fiber.Ctx) error {
	note, fail := loadOwnedNote(c)
	if note == nil {
		return fail
	}

	var req UpdateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Description != nil {
		note.Description = *req.Description
	}
	if req.Course != nil {
		note.Course = *req.Course
	}
	if req.FileURL != nil {
		note.FileURL = *req.FileURL
	}
	if req.FileType != nil {
		note.FileType = *req.FileType
	}

	if err := database.DB.Save(note).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update note"})
	}
	return c.JSON(note)
}

// DeleteNote soft-deletes: the note stays in storage with is_active
// set to false so admin views can still list it.
func DeleteNote(c *fiber.Ctx) error {
	note, fail := loadOwnedNote(c)
	if note == nil {
		return fail
	}

	note.IsActive = false
	if err := database.DB.Save(note).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete note"})
	}
	return c.JSON(fiber.Map{"message": "Note deleted successfully"})
}

// loadOwnedNote fetches the note and enforces that the caller uploaded
// it or is an admin. On failure the note is nil and the second return
// value is the already-written error response.
func loadOwnedNote(c *fiber.Ctx) (*models.Note, error) {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	role := claims["role"].(string)

	noteID := c.Params("id")
	if _, err := uuid.Parse(noteID); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid note ID format"})
	}

	var note models.Note
	if err := database.DB.First(&note, "id = ?", noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Note not found"})
		}
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if note.UploadedByID != userID && role != "admin" {
		return nil, c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this note"})
	}
	return &note, nil
}
