package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mpetrovic-dev/usermgmt/internal/models"
	"gorm.io/gorm"
)

type gormClientRepo struct {
	db *gorm.DB
}

func (r *gormClientRepo) Insert(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *gormClientRepo) FindByAPIKey(ctx context.Context, apiKey string) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).Where("api_key = ?", apiKey).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *gormClientRepo) FindAPIKeyByUserID(ctx context.Context, userID uuid.UUID) (string, error) {
	var client models.Client
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return client.APIKey, nil
}
