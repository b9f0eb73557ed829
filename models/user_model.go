package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'user'" json:"role"`

	StudyStreak int            `gorm:"not null;default:0" json:"study_streak"`
	VisitedDays pq.StringArray `gorm:"type:text[]" json:"visited_days"`
	LastLogin   *time.Time     `json:"last_login"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserProfile is the projection returned by the auth and dashboard
// endpoints. It never carries the password hash and reports visited
// days as a count rather than the raw list.
type UserProfile struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Streak      int        `json:"streak"`
	VisitedDays int        `json:"visitedDays"`
	LastLogin   *time.Time `json:"lastLogin"`
	Role        string     `json:"role"`
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		Streak:      u.StudyStreak,
		VisitedDays: len(u.VisitedDays),
		LastLogin:   u.LastLogin,
		Role:        u.Role,
	}
}
