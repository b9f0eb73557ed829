package services

import (
	"testing"
	"time"

	"github.com/learnhub/learnhub_backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestApplyLoginFirstLogin(t *testing.T) {
	user := &models.User{}
	now := mustTime(t, "2024-03-11T08:00:00Z")

	changed := ApplyLogin(user, now)

	assert.True(t, changed)
	assert.Equal(t, 1, user.StudyStreak)
	assert.Equal(t, []string{"2024-03-11"}, []string(user.VisitedDays))
	require.NotNil(t, user.LastLogin)
	assert.Equal(t, now, *user.LastLogin)
}

func TestApplyLoginSameDayIsNoOp(t *testing.T) {
	first := mustTime(t, "2024-03-11T08:00:00Z")
	user := &models.User{}
	ApplyLogin(user, first)

	again := mustTime(t, "2024-03-11T22:30:00Z")
	changed := ApplyLogin(user, again)

	assert.False(t, changed)
	assert.Equal(t, 1, user.StudyStreak)
	assert.Len(t, user.VisitedDays, 1)
	assert.Equal(t, first, *user.LastLogin, "same-day re-login must not touch last_login")
}

func TestApplyLoginConsecutiveDayExtendsStreak(t *testing.T) {
	lastLogin := mustTime(t, "2024-03-10T19:00:00Z")
	user := &models.User{
		StudyStreak: 4,
		VisitedDays: []string{"2024-03-10"},
		LastLogin:   &lastLogin,
	}

	now := mustTime(t, "2024-03-11T08:00:00Z")
	changed := ApplyLogin(user, now)

	assert.True(t, changed)
	assert.Equal(t, 5, user.StudyStreak)
	assert.Contains(t, []string(user.VisitedDays), "2024-03-11")
	assert.Equal(t, now, *user.LastLogin)
}

func TestApplyLoginGapResetsStreakToOne(t *testing.T) {
	lastLogin := mustTime(t, "2024-03-11T08:00:00Z")
	user := &models.User{
		StudyStreak: 5,
		VisitedDays: []string{"2024-03-10", "2024-03-11"},
		LastLogin:   &lastLogin,
	}

	// Three-day gap: streak drops to 1, not 0.
	now := mustTime(t, "2024-03-14T08:00:00Z")
	ApplyLogin(user, now)

	assert.Equal(t, 1, user.StudyStreak)
	assert.Contains(t, []string(user.VisitedDays), "2024-03-14")
}

func TestApplyLoginTwoDayGapResets(t *testing.T) {
	lastLogin := mustTime(t, "2024-03-10T23:59:00Z")
	user := &models.User{
		StudyStreak: 9,
		VisitedDays: []string{"2024-03-10"},
		LastLogin:   &lastLogin,
	}

	ApplyLogin(user, mustTime(t, "2024-03-12T00:01:00Z"))

	assert.Equal(t, 1, user.StudyStreak)
}

func TestApplyLoginMidnightBoundaryCountsAsNewDay(t *testing.T) {
	lastLogin := mustTime(t, "2024-03-10T23:59:00Z")
	user := &models.User{
		StudyStreak: 2,
		VisitedDays: []string{"2024-03-10"},
		LastLogin:   &lastLogin,
	}

	// Two minutes of wall-clock time, but a new calendar day.
	ApplyLogin(user, mustTime(t, "2024-03-11T00:01:00Z"))

	assert.Equal(t, 3, user.StudyStreak)
	assert.Equal(t, []string{"2024-03-10", "2024-03-11"}, []string(user.VisitedDays))
}

func TestApplyLoginUsesUTCDayBoundary(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	lastLogin := mustTime(t, "2024-03-10T21:00:00Z")
	user := &models.User{
		StudyStreak: 1,
		VisitedDays: []string{"2024-03-10"},
		LastLogin:   &lastLogin,
	}

	// 2024-03-11 03:00 local is 2024-03-10 22:00 UTC: still the same
	// UTC day, so nothing changes.
	now := time.Date(2024, 3, 11, 3, 0, 0, 0, loc)
	changed := ApplyLogin(user, now)

	assert.False(t, changed)
	assert.Equal(t, 1, user.StudyStreak)
	assert.Len(t, user.VisitedDays, 1)
}

func TestApplyLoginNeverDuplicatesVisitedDays(t *testing.T) {
	// A stale record can already hold today's entry even though
	// last_login points at an older day; the set must not grow.
	lastLogin := mustTime(t, "2024-03-09T10:00:00Z")
	user := &models.User{
		StudyStreak: 3,
		VisitedDays: []string{"2024-03-09", "2024-03-11"},
		LastLogin:   &lastLogin,
	}

	ApplyLogin(user, mustTime(t, "2024-03-11T12:00:00Z"))

	assert.Equal(t, []string{"2024-03-09", "2024-03-11"}, []string(user.VisitedDays))
	assert.Equal(t, 1, user.StudyStreak)
}

func TestDayUTC(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	assert.Equal(t, "2024-03-12", DayUTC(time.Date(2024, 3, 11, 22, 0, 0, 0, loc)))
	assert.Equal(t, "2024-03-11", DayUTC(mustTime(t, "2024-03-11T00:00:00Z")))
}
