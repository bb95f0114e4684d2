package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Slide is a homepage banner, admin-managed and read-only to shoppers.
type Slide struct {
	ID           string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title        string    `gorm:"size:200" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	ImageDesktop string    `gorm:"size:255;not null" json:"image_desktop"`
	ImageMobile  string    `gorm:"size:255" json:"image_mobile"`
	LinkURL      string    `gorm:"size:255" json:"link_url"`
	DisplayOrder int       `gorm:"not null;default:0;index" json:"display_order"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s *Slide) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
