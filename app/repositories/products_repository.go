package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/DevarshLade/lade-studio/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	GetPaginated(ctx context.Context, limit, offset int) ([]models.Product, int64, error)
	GetByCategorySlugPaginated(ctx context.Context, slug string, limit, offset int) ([]models.Product, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
	SearchProductsPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Product, int64, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	UpdateSlug(ctx context.Context, id, slug string) error
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Preload("Category").
		Preload("Images").
		Where("id = ?", id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Preload("Category").
		Preload("Images").
		Where("slug = ?", slug).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetPaginated(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Images").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) GetByCategorySlugPaginated(ctx context.Context, slug string, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	err := p.db.WithContext(ctx).
		Joins("JOIN categories c ON c.id = products.category_id").
		Where("c.slug = ?", slug).
		Model(&models.Product{}).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = p.db.WithContext(ctx).
		Joins("JOIN categories c ON c.id = products.category_id").
		Where("c.slug = ?", slug).
		Preload("Category").
		Preload("Images").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Images").
		Preload("Category").
		Where("is_featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) SearchProductsPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64
	searchKeyword := "%" + strings.ToLower(keyword) + "%"

	if err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchKeyword, searchKeyword).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.db.WithContext(ctx).
		Preload("Images").
		Preload("Category").
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchKeyword, searchKeyword).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := p.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) UpdateSlug(ctx context.Context, id, slug string) error {
	return p.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Update("slug", slug).Error
}

func (p *productRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64
	err := p.db.WithContext(ctx).Model(&models.Product{}).
		Where("slug = ? AND id != ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}
