package services

import (
	"time"

	"github.com/learnhub/learnhub_backend/models"
)

const dayLayout = "2006-01-02"

// DayUTC returns the calendar day of t as YYYY-MM-DD in UTC. All streak
// accounting uses UTC days so a server timezone change never shifts the
// day boundary.
func DayUTC(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// ApplyLogin updates the user's study streak, visited days and last
// login for a successful authentication at instant now. The mutation is
// in-memory only; the caller persists the record.
//
// A repeat login on the same UTC calendar day is a no-op: the streak,
// the visited-day set and the last-login timestamp are all left
// untouched. Returns true when the user record changed and needs to be
// saved.
func ApplyLogin(user *models.User, now time.Time) bool {
	today := DayUTC(now)

	var lastLoginDay string
	if user.LastLogin != nil {
		lastLoginDay = DayUTC(*user.LastLogin)
	}

	if lastLoginDay == today {
		return false
	}

	if !hasVisitedDay(user, today) {
		user.VisitedDays = append(user.VisitedDays, today)
	}

	yesterday := DayUTC(now.UTC().AddDate(0, 0, -1))
	if lastLoginDay == yesterday {
		user.StudyStreak++
	} else {
		// First login ever, or a gap of two days or more. A login
		// always counts as at least a one-day streak.
		user.StudyStreak = 1
	}

	loginAt := now
	user.LastLogin = &loginAt
	return true
}

func hasVisitedDay(user *models.User, day string) bool {
	for _, visited := range user.VisitedDays {
		if visited == day {
			return true
		}
	}
	return false
}
