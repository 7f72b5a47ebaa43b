package repository

import (
	"pokehub/backend/internal/models"

	"gorm.io/gorm"
)

// DeviceTokenRepository is the gorm-backed device token store.
type DeviceTokenRepository struct {
	db *gorm.DB
}

func NewDeviceTokenRepository(db *gorm.DB) *DeviceTokenRepository {
	return &DeviceTokenRepository{db: db}
}

func (r *DeviceTokenRepository) Exists(userID uint, token string) (bool, error) {
	var count int64
	err := r.db.Model(&models.DeviceToken{}).
		Where("user_id = ? AND token = ?", userID, token).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DeviceTokenRepository) Create(token *models.DeviceToken) error {
	return r.db.Create(token).Error
}

func (r *DeviceTokenRepository) ListByUser(userID uint) ([]models.DeviceToken, error) {
	var tokens []models.DeviceToken
	err := r.db.Where("user_id = ?", userID).Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}
