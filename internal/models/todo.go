package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Todo 按天管理的待办事项。
type Todo struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;index;not null" json:"user_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"size:1024" json:"description,omitempty"`
	DueDate     time.Time `gorm:"index;not null" json:"due_date"`
	DueTime     string    `gorm:"size:5" json:"due_time,omitempty"` // "HH:MM"，可为空
	Completed   bool      `gorm:"index;not null;default:false" json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (t *Todo) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
