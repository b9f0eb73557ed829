package services

import (
	"testing"

	"github.com/learnhub/learnhub_backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeCourse() *models.Course {
	return &models.Course{ID: uuid.New(), Title: "Intro to Go", Price: 0}
}

func paidCourse() *models.Course {
	return &models.Course{ID: uuid.New(), Title: "Advanced Go", Price: 499}
}

func TestValidateFreeEnrollment(t *testing.T) {
	t.Run("allows free course with no prior rows", func(t *testing.T) {
		assert.NoError(t, ValidateFreeEnrollment(freeCourse(), nil))
	})

	t.Run("rejects paid course", func(t *testing.T) {
		err := ValidateFreeEnrollment(paidCourse(), nil)
		assert.ErrorIs(t, err, ErrNotFreeCourse)
	})

	t.Run("rejects when any row exists", func(t *testing.T) {
		existing := []models.Enrollment{{PaymentStatus: models.PaymentStatusCompleted}}
		assert.ErrorIs(t, ValidateFreeEnrollment(freeCourse(), existing), ErrAlreadyEnrolled)

		existing = []models.Enrollment{{PaymentStatus: models.PaymentStatusPending}}
		assert.ErrorIs(t, ValidateFreeEnrollment(freeCourse(), existing), ErrAlreadyEnrolled)
	})
}

func TestValidatePendingPayment(t *testing.T) {
	t.Run("allows paid course with no prior rows", func(t *testing.T) {
		pending, err := ValidatePendingPayment(paidCourse(), nil)
		require.NoError(t, err)
		assert.Nil(t, pending)
	})

	t.Run("rejects free course", func(t *testing.T) {
		_, err := ValidatePendingPayment(freeCourse(), nil)
		assert.ErrorIs(t, err, ErrFreeCourse)
	})

	t.Run("rejects when a completed row exists", func(t *testing.T) {
		existing := []models.Enrollment{
			{PaymentStatus: models.PaymentStatusPending},
			{PaymentStatus: models.PaymentStatusCompleted},
		}
		_, err := ValidatePendingPayment(paidCourse(), existing)
		assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	})

	t.Run("reuses an open pending row", func(t *testing.T) {
		open := models.Enrollment{ID: uuid.New(), PaymentStatus: models.PaymentStatusPending, Amount: 499}
		pending, err := ValidatePendingPayment(paidCourse(), []models.Enrollment{open})
		require.NoError(t, err)
		require.NotNil(t, pending)
		assert.Equal(t, open.ID, pending.ID)
	})
}

func TestValidateCompletion(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("allows owner to complete a pending enrollment", func(t *testing.T) {
		enrollment := &models.Enrollment{UserID: owner, PaymentStatus: models.PaymentStatusPending}
		assert.NoError(t, ValidateCompletion(enrollment, owner))
	})

	t.Run("rejects a non-owner", func(t *testing.T) {
		enrollment := &models.Enrollment{UserID: owner, PaymentStatus: models.PaymentStatusPending}
		assert.ErrorIs(t, ValidateCompletion(enrollment, stranger), ErrNotEnrollmentOwner)
	})

	t.Run("rejects a second completion", func(t *testing.T) {
		enrollment := &models.Enrollment{UserID: owner, PaymentStatus: models.PaymentStatusCompleted}
		assert.ErrorIs(t, ValidateCompletion(enrollment, owner), ErrAlreadyCompleted)
	})

	t.Run("ownership is checked before completion state", func(t *testing.T) {
		enrollment := &models.Enrollment{UserID: owner, PaymentStatus: models.PaymentStatusCompleted}
		assert.ErrorIs(t, ValidateCompletion(enrollment, stranger), ErrNotEnrollmentOwner)
	})
}
