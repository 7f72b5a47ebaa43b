package models

import "gorm.io/gorm"

// User represents a user in the system.
type User struct {
	gorm.Model
	Firstname    string `gorm:"size:255;not null"`
	Lastname     string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`

	DeviceTokens []DeviceToken `gorm:"foreignKey:UserID"`
}

// FullName returns the user's display name as used in notification bodies.
func (u User) FullName() string {
	return u.Firstname + " " + u.Lastname
}
