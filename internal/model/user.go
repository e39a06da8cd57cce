package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents an admin user able to manage site content.
// RefreshToken holds the single active session token; it is nulled on logout,
// which is what makes a logout revoke the session immediately.
type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Username     string         `json:"username" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"`
	RefreshToken *string        `json:"-" gorm:"size:512;index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
