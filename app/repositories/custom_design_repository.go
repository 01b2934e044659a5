package repositories

import (
	"context"

	"github.com/DevarshLade/lade-studio/app/models"
	"gorm.io/gorm"
)

type CustomDesignRepository interface {
	Create(ctx context.Context, req *models.CustomDesignRequest) error
	FindByUserID(ctx context.Context, userID string) ([]models.CustomDesignRequest, error)
	GetAll(ctx context.Context) ([]models.CustomDesignRequest, error)
}

type gormCustomDesignRepository struct {
	db *gorm.DB
}

func NewCustomDesignRepository(db *gorm.DB) CustomDesignRepository {
	return &gormCustomDesignRepository{db: db}
}

func (r *gormCustomDesignRepository) Create(ctx context.Context, req *models.CustomDesignRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *gormCustomDesignRepository) FindByUserID(ctx context.Context, userID string) ([]models.CustomDesignRequest, error) {
	var requests []models.CustomDesignRequest
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *gormCustomDesignRepository) GetAll(ctx context.Context) ([]models.CustomDesignRequest, error) {
	var requests []models.CustomDesignRequest
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
