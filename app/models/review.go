package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxReviewsPerProduct caps how many reviews one user may leave on a product.
const MaxReviewsPerProduct = 10

type Review struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string `gorm:"size:36;not null;index:idx_reviews_user_product,priority:1" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"-"`
	// UserID identifies the reviewer for the eligibility cap. AuthorName is the
	// display name the legacy data keeps as a free string, not a foreign key.
	UserID     string    `gorm:"size:64;not null;index:idx_reviews_user_product,priority:2" json:"user_id"`
	AuthorName string    `gorm:"size:255;not null" json:"author_name"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	ImageURLs  []string  `gorm:"serializer:json;type:text" json:"image_urls"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
