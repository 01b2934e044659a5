package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CustomDesignStatusPending   = "Pending"
	CustomDesignStatusReviewed  = "Reviewed"
	CustomDesignStatusCompleted = "Completed"
)

// CustomDesignRequest is a customer intake row for made-to-order pieces.
type CustomDesignRequest struct {
	ID              string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID          string    `gorm:"size:64;index" json:"user_id,omitempty"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Email           string    `gorm:"size:255;not null" json:"email"`
	Phone           string    `gorm:"size:20;not null" json:"phone"`
	CategoryID      string    `gorm:"size:36;index" json:"category_id"`
	ProductID       string    `gorm:"size:36;index" json:"product_id,omitempty"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	ReferenceImages []string  `gorm:"serializer:json;type:text" json:"reference_images"`
	Status          string    `gorm:"size:20;default:'Pending'" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (c *CustomDesignRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
