package models

import (
	"time"

	"gorm.io/gorm"
)

// User mirrors an identity-provider account. Rows are written only by the
// webhook sync path; the store never creates users itself and keeps no
// credentials.
type User struct {
	ID        string         `gorm:"size:64;not null;uniqueIndex;primary_key" json:"id"`
	Email     string         `gorm:"size:255;not null;index" json:"email"`
	FirstName string         `gorm:"size:100" json:"first_name"`
	LastName  string         `gorm:"size:100" json:"last_name"`
	ImageURL  string         `gorm:"type:text" json:"image_url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"`
}
