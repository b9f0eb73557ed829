package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserProfileProjection(t *testing.T) {
	lastLogin := time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC)
	user := &User{
		ID:          uuid.New(),
		Name:        "Asha",
		Email:       "asha@example.com",
		Password:    "hash",
		Role:        "user",
		StudyStreak: 5,
		VisitedDays: []string{"2024-03-09", "2024-03-10", "2024-03-11"},
		LastLogin:   &lastLogin,
	}

	profile := user.Profile()

	assert.Equal(t, user.ID.String(), profile.ID)
	assert.Equal(t, 5, profile.Streak)
	assert.Equal(t, 3, profile.VisitedDays, "profile reports a count, not the raw list")
	assert.Equal(t, &lastLogin, profile.LastLogin)
	assert.Equal(t, "user", profile.Role)
}

func TestCourseIsFree(t *testing.T) {
	assert.True(t, (&Course{Price: 0}).IsFree())
	assert.False(t, (&Course{Price: 499}).IsFree())
}

func TestEnrollmentIsCompleted(t *testing.T) {
	assert.False(t, (&Enrollment{PaymentStatus: PaymentStatusPending}).IsCompleted())
	assert.True(t, (&Enrollment{PaymentStatus: PaymentStatusCompleted}).IsCompleted())
}
