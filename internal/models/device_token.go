package models

import "gorm.io/gorm"

// DeviceToken is an opaque push-notification address for one installed
// app instance. A user accumulates one row per device; duplicates for
// the same (user, token) pair are never inserted.
type DeviceToken struct {
	gorm.Model
	UserID uint   `gorm:"not null;index"`
	Token  string `gorm:"size:512;not null"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
