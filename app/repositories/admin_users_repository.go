package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/luxystore/luxy-api/app/models"
	"gorm.io/gorm"
)

// AdminUserRepositoryImpl is the privileged path to the admin allow-list.
// Nothing outside the admin gate and the back office may query this table;
// public handlers never receive this repository.
type AdminUserRepositoryImpl interface {
	FindByUserID(ctx context.Context, userID string) (*models.AdminUser, error)
	GetAll(ctx context.Context) ([]models.AdminUser, error)
	Create(ctx context.Context, admin *models.AdminUser) error
	Delete(ctx context.Context, id string) error
}

type adminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) AdminUserRepositoryImpl {
	return &adminUserRepository{db}
}

// FindByUserID returns ErrNotFound when the user has no allow-list row. The
// admin gate treats that, and any other error, as not-admin.
func (r *adminUserRepository) FindByUserID(ctx context.Context, userID string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.WithContext(ctx).First(&admin, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no admin record for user %s", models.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("%w: admin lookup for user %s: %v", models.ErrDataUnavailable, userID, err)
	}
	return &admin, nil
}

func (r *adminUserRepository) GetAll(ctx context.Context) ([]models.AdminUser, error) {
	var admins []models.AdminUser
	if err := r.db.WithContext(ctx).Order("created_at").Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("%w: listing admin users: %v", models.ErrDataUnavailable, err)
	}
	return admins, nil
}

func (r *adminUserRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminUserRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.AdminUser{}, "id = ?", id).Error
}
