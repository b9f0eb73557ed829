package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Image       string    `gorm:"size:255;not null" json:"image"`
	Price       float64   `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	Instructor  string    `gorm:"size:255" json:"instructor"`
	Duration    string    `gorm:"size:100" json:"duration"`
	Level       string    `gorm:"size:20" json:"level"`
	Category    string    `gorm:"size:100" json:"category"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Course) IsFree() bool {
	return c.Price == 0
}
