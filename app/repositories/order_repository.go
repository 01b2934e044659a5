package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/DevarshLade/lade-studio/app/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	FindByCode(ctx context.Context, orderCode string) (*models.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Order, error)
	GetAllOrders(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

type gormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

func (r *gormOrderRepository) Create(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *gormOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order

	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product.Images").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) FindByCode(ctx context.Context, orderCode string) (*models.Order, error) {
	var order models.Order

	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product.Images").
		First(&order, "order_code = ?", orderCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order

	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product.Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order

	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}).Error
}
