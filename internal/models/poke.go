package models

import "gorm.io/gorm"

// PokePrototype is a reusable named poke template owned by a user.
// Only the owner may update or delete it.
type PokePrototype struct {
	gorm.Model
	Name    string `gorm:"size:255;not null"`
	Message string `gorm:"size:255;not null"`
	OwnerID uint   `gorm:"not null;index"`

	Owner User `gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// Poke is a single sent nudge. Response starts empty and is filled in
// once by the target.
type Poke struct {
	gorm.Model
	PrototypeID uint   `gorm:"not null;index"`
	OwnerID     uint   `gorm:"not null;index"`
	TargetID    uint   `gorm:"not null;index"`
	Response    string `gorm:"size:255"`

	Prototype PokePrototype `gorm:"foreignKey:PrototypeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
