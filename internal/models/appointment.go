package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	PetID string `gorm:"type:uuid;index;not null" json:"petId"`
	Pet   Pet    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pet"`

	OwnerID string `gorm:"type:uuid;index;not null" json:"ownerId"`
	Owner   Owner  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner"`

	// Canonical forms only: date is YYYY-MM-DD, time is HH:MM.
	// The scheduled-slot invariant is an exact match over (pet_id, date, time).
	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Reason string `gorm:"size:255" json:"reason"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
