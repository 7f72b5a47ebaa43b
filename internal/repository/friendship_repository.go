package repository

import (
	"errors"

	"pokehub/backend/internal/models"

	"gorm.io/gorm"
)

// FriendshipRepository is the gorm-backed store for friend requests
// and the two-row friendships they become.
type FriendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{db: db}
}

func (r *FriendshipRepository) GetRequest(id uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	err := r.db.First(&request, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *FriendshipRepository) FindPendingRequest(ownerID, targetID uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	err := r.db.Where("owner_id = ? AND target_id = ?", ownerID, targetID).First(&request).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *FriendshipRepository) CreateRequest(request *models.FriendRequest) error {
	return r.db.Create(request).Error
}

func (r *FriendshipRepository) DeleteRequest(id uint) error {
	return r.db.Delete(&models.FriendRequest{}, id).Error
}

func (r *FriendshipRepository) ListIncomingRequests(targetID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := r.db.Where("target_id = ?", targetID).Preload("Owner").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// AcceptRequest materializes both friend rows and removes the request.
// The three writes commit together; a failure rolls all of them back.
func (r *FriendshipRepository) AcceptRequest(request *models.FriendRequest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Friend{UserID: request.OwnerID, FriendID: request.TargetID}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.Friend{UserID: request.TargetID, FriendID: request.OwnerID}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.FriendRequest{}, request.ID).Error
	})
}

func (r *FriendshipRepository) ListFriends(userID uint) ([]models.Friend, error) {
	var friends []models.Friend
	err := r.db.Where("user_id = ?", userID).Preload("Counterpart").Find(&friends).Error
	if err != nil {
		return nil, err
	}
	return friends, nil
}

func (r *FriendshipRepository) AreFriends(userID, friendID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Friend{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteFriendship removes both directions of the pair in one
// transaction so a one-sided friendship can never be left behind.
func (r *FriendshipRepository) DeleteFriendship(userID, friendID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND friend_id = ?", userID, friendID).Delete(&models.Friend{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND friend_id = ?", friendID, userID).Delete(&models.Friend{}).Error
	})
}
