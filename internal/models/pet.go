package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Pet struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	OwnerID string `gorm:"type:uuid;index;not null" json:"ownerId"`
	Owner   Owner  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Type  string `gorm:"size:50;not null" json:"type"`
	Breed string `gorm:"size:100" json:"breed"`
	Age   int    `json:"age"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Pet) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
