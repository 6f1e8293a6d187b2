package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is scoped to the authenticated user; no cross-record invariants.
type Task struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID string `gorm:"type:uuid;index;not null" json:"userId"`

	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"size:500" json:"description"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	Deadline    *time.Time `json:"deadline"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
