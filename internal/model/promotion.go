package model

import (
	"time"

	"gorm.io/gorm"
)

// Promotion is a time-windowed campaign over a set of packages. Active is
// derived from the window by the scheduler, never set directly by clients.
type Promotion struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:255;not null"`
	StartDate time.Time      `json:"start_date" gorm:"not null;index"`
	EndDate   time.Time      `json:"end_date" gorm:"not null;index"`
	Active    bool           `json:"active" gorm:"default:false;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Packages []Package `json:"packages,omitempty" gorm:"many2many:promotion_packages;"`
}

// PromotionPackage links a package to a promotion. Rows are created and
// removed only through the attach/detach endpoints; the scheduler does not
// touch them.
type PromotionPackage struct {
	PromotionID uint      `json:"promotion_id" gorm:"primaryKey"`
	PackageID   uint      `json:"package_id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
}
