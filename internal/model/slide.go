package model

import (
	"time"

	"gorm.io/gorm"
)

// Slide is one entry of the landing page carousel.
type Slide struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Title     string         `json:"title" gorm:"size:255;not null"`
	Caption   string         `json:"caption" gorm:"size:500"`
	ImageURL  string         `json:"image_url" gorm:"size:512;not null"`
	Position  int            `json:"position" gorm:"default:0;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
