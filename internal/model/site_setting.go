package model

import "time"

// SiteSetting is a keyed piece of site chrome (logo, hero image, contact
// blurb). Settings are upserted by key and never soft deleted.
type SiteSetting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"uniqueIndex;size:100;not null"`
	Value     string    `json:"value" gorm:"type:text"`
	ImageURL  string    `json:"image_url" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
