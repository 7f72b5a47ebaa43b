package models

import "gorm.io/gorm"

// Friend is one direction of a symmetric friendship. Accepting a
// friend request materializes two rows, (A,B) and (B,A), so "friends
// of X" is a single indexed lookup. The pair is only ever created or
// deleted together.
type Friend struct {
	gorm.Model
	UserID   uint `gorm:"not null;index"`
	FriendID uint `gorm:"not null;index"`

	Counterpart User `gorm:"foreignKey:FriendID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
