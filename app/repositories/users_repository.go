package repositories

import (
	"context"
	"errors"

	"github.com/DevarshLade/lade-studio/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepositoryImpl interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepositoryImpl {
	return &userRepository{db}
}

func (u *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Upsert writes the mirrored identity-provider row. Webhook deliveries can
// arrive out of order or twice, so created/updated both land here.
func (u *userRepository) Upsert(ctx context.Context, user *models.User) error {
	return u.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "first_name", "last_name", "image_url", "updated_at"}),
	}).Create(user).Error
}

func (u *userRepository) Delete(ctx context.Context, id string) error {
	return u.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}
