package handlers

import (
	"errors"
	"time"

	"github.com/learnhub/learnhub_backend/database"
	"github.com/learnhub/learnhub_backend/models"
	"github.com/learnhub/learnhub_backend/notifications"
	"github.com/learnhub/learnhub_backend/services"
	"github.com/learnhub/learnhub_backend/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompletePaymentRequest struct {
	PaymentID *string `json:"paymentId"`
}

func GetMyEnrollments(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var enrollments []models.Enrollment
	err := database.DB.Preload("Course").
		Where("user_id = ? AND payment_status = ?", userID, models.PaymentStatusCompleted).
		Order("enrolled_at desc").
		Find(&enrollments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(enrollments)
}

func CheckEnrollment(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	courseID := c.Params("courseId")
	if _, err := uuid.Parse(courseID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID format"})
	}

	var count int64
	err := database.DB.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND payment_status = ?", userID, courseID, models.PaymentStatusCompleted).
		Count(&count).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"enrolled": count > 0})
}

func EnrollFree(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	course, fail := loadCourse(c)
	if course == nil {
		return fail
	}

	var enrollment models.Enrollment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var existing []models.Enrollment
		if err := tx.Where("user_id = ? AND course_id = ?", userID, course.ID).Find(&existing).Error; err != nil {
			return err
		}

		if err := services.ValidateFreeEnrollment(course, existing); err != nil {
			return err
		}

		enrollment = models.Enrollment{
			UserID:        userID,
			CourseID:      course.ID,
			PaymentStatus: models.PaymentStatusCompleted,
			Amount:        0,
			EnrolledAt:    time.Now(),
		}
		return tx.Create(&enrollment).Error
	})
	if err != nil {
		return enrollmentError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Successfully enrolled in the course!",
		"enrollment": enrollment,
	})
}

func CreatePayment(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	course, fail := loadCourse(c)
	if course == nil {
		return fail
	}

	var enrollment models.Enrollment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var existing []models.Enrollment
		if err := tx.Where("user_id = ? AND course_id = ?", userID, course.ID).Find(&existing).Error; err != nil {
			return err
		}

		pending, err := services.ValidatePendingPayment(course, existing)
		if err != nil {
			return err
		}
		if pending != nil {
			// Abandoned checkout for the same course: hand back the
			// open pending row instead of stacking another.
			enrollment = *pending
			return nil
		}

		enrollment = models.Enrollment{
			UserID:        userID,
			CourseID:      course.ID,
			PaymentStatus: models.PaymentStatusPending,
			Amount:        course.Price,
			EnrolledAt:    time.Now(),
		}
		return tx.Create(&enrollment).Error
	})
	if err != nil {
		return enrollmentError(c, err)
	}

	return c.JSON(fiber.Map{
		"enrollmentId": enrollment.ID,
		"amount":       enrollment.Amount,
		"courseName":   course.Title,
	})
}

// CompletePayment simulates the provider settlement callback: it flips
// the pending enrollment to completed and records the payment
// reference, generating one when the client did not supply it.
func CompletePayment(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	enrollmentID := c.Params("enrollmentId")
	if _, err := uuid.Parse(enrollmentID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid enrollment ID format"})
	}

	// The payment reference is optional and the client may send no
	// body at all; a missing or unreadable body falls back to a
	// generated reference.
	var req CompletePaymentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}

	var enrollment models.Enrollment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&enrollment, "id = ?", enrollmentID).Error; err != nil {
			return err
		}

		if err := services.ValidateCompletion(&enrollment, userID); err != nil {
			return err
		}

		paymentID := utils.GeneratePaymentReference()
		if req.PaymentID != nil && *req.PaymentID != "" {
			paymentID = *req.PaymentID
		}

		enrollment.PaymentStatus = models.PaymentStatusCompleted
		enrollment.PaymentID = &paymentID
		return tx.Save(&enrollment).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
		}
		return enrollmentError(c, err)
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err == nil {
		go notifications.SendEmail(user.Name, user.Email, "Enrollment Confirmed!",
			"<h1>Payment Successful</h1><p>You are now enrolled in the course. Happy learning!</p>")
	}

	return c.JSON(fiber.Map{
		"message":    "Payment successful! You are now enrolled in the course.",
		"enrollment": enrollment,
	})
}

func loadCourse(c *fiber.Ctx) (*models.Course, error) {
	courseID := c.Params("courseId")
	if _, err := uuid.Parse(courseID); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID format"})
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
		}
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return &course, nil
}

func enrollmentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFreeCourse), errors.Is(err, services.ErrFreeCourse):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyEnrolled), errors.Is(err, services.ErrAlreadyCompleted):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNotEnrollmentOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unauthorized"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
}
