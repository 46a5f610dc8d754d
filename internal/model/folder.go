package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Folder - папка пользователя (таблица folders). ParentID == nil - папка верхнего уровня.
type Folder struct {
	ID       string  `gorm:"primaryKey;type:uuid" json:"id"`
	UserID   string  `gorm:"not null;index" json:"user_id"`
	Name     string  `gorm:"not null" json:"name"`
	ParentID *string `gorm:"type:uuid;index" json:"parent_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (f *Folder) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
