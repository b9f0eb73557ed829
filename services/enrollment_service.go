package services

import (
	"errors"

	"github.com/learnhub/learnhub_backend/models"
	"github.com/google/uuid"
)

var (
	ErrNotFreeCourse      = errors.New("this is not a free course")
	ErrFreeCourse         = errors.New("this is a free course")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrNotEnrollmentOwner = errors.New("enrollment belongs to another user")
	ErrAlreadyCompleted   = errors.New("payment already completed for this enrollment")
)

// ValidateFreeEnrollment decides whether a free enrollment may be
// created. Any existing row for the pair, pending or completed, blocks
// a new one.
func ValidateFreeEnrollment(course *models.Course, existing []models.Enrollment) error {
	if !course.IsFree() {
		return ErrNotFreeCourse
	}
	if len(existing) > 0 {
		return ErrAlreadyEnrolled
	}
	return nil
}

// ValidatePendingPayment decides whether a payment may be started for a
// paid course. A completed row blocks it. An existing pending row is
// returned so the caller reuses it instead of stacking duplicates for
// the same pair.
func ValidatePendingPayment(course *models.Course, existing []models.Enrollment) (*models.Enrollment, error) {
	if course.IsFree() {
		return nil, ErrFreeCourse
	}
	for i := range existing {
		if existing[i].IsCompleted() {
			return nil, ErrAlreadyEnrolled
		}
	}
	for i := range existing {
		if existing[i].PaymentStatus == models.PaymentStatusPending {
			return &existing[i], nil
		}
	}
	return nil, nil
}

// ValidateCompletion guards the pending -> completed transition. Only
// the owning user may complete, and a completed enrollment is terminal.
func ValidateCompletion(enrollment *models.Enrollment, userID uuid.UUID) error {
	if enrollment.UserID != userID {
		return ErrNotEnrollmentOwner
	}
	if enrollment.IsCompleted() {
		return ErrAlreadyCompleted
	}
	return nil
}
