package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

type Enrollment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	CourseID uuid.UUID `gorm:"type:uuid;not null;index" json:"courseId"`

	// pending until the simulated payment completes; completed is terminal.
	PaymentStatus string    `gorm:"size:20;not null;default:'pending'" json:"paymentStatus"`
	Amount        float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentID     *string   `gorm:"size:255" json:"paymentId"`
	EnrolledAt    time.Time `gorm:"not null" json:"enrolledAt"`

	User   User   `gorm:"foreignkey:UserID" json:"-"`
	Course Course `gorm:"foreignkey:CourseID" json:"course,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Enrollment) IsCompleted() bool {
	return e.PaymentStatus == PaymentStatusCompleted
}
