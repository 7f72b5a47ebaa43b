package models

import "gorm.io/gorm"

// SnoozeThreshold is the rejection count at which a habit starts
// warning the owner's friends. The counter is not reset when the
// threshold is crossed, only by completing the habit, so the warning
// re-fires on every further rejection.
const SnoozeThreshold = 3

// Habit is a recurring personal reminder. Day is a 7-character bitmask
// over the weekdays ("0101010"), Hour the time of day ("HH:MM:SS").
type Habit struct {
	gorm.Model
	Type        string `gorm:"size:100;not null"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"size:255;not null"`
	Day         string `gorm:"size:7;not null"`
	Hour        string `gorm:"size:8;not null"`
	Rejected    int    `gorm:"not null;default:0"`
	OwnerID     uint   `gorm:"not null;index"`

	Owner User `gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
