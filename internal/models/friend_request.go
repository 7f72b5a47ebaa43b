package models

import "gorm.io/gorm"

// FriendRequest is a pending, directional proposal to establish a
// friendship. Requests are terminal: accepting or declining deletes the
// row, it is never updated in place.
type FriendRequest struct {
	gorm.Model
	OwnerID  uint `gorm:"not null;index"`
	TargetID uint `gorm:"not null;index"`
	Status   bool `gorm:"not null;default:false"`

	Owner  User `gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Target User `gorm:"foreignKey:TargetID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
