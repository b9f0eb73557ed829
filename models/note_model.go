package models

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`

	// Free-text course label, not a foreign key. Notes can reference
	// courses that do not exist in the catalog.
	Course string `gorm:"size:255;not null" json:"course"`

	FileURL      string    `gorm:"size:255;not null" json:"fileUrl"`
	FileType     string    `gorm:"size:20;default:'PDF'" json:"fileType"`
	UploadedByID uuid.UUID `gorm:"type:uuid" json:"uploadedById"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`

	UploadedBy User `gorm:"foreignkey:UploadedByID" json:"uploadedBy,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
