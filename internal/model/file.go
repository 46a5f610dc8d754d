package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// File - запись о загруженном файле пользователя (таблица files).
type File struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID string `gorm:"not null;index" json:"user_id"`

	Name string `gorm:"not null" json:"name"`
	Path string `gorm:"not null" json:"path"` // ключ объекта в хранилище
	Size int64  `gorm:"not null;default:0" json:"size"`
	Type string `json:"type"`

	// nil - файл лежит в корне
	FolderID  *string `gorm:"type:uuid;index" json:"folder_id"`
	IsDeleted bool    `gorm:"not null;default:false;index" json:"is_deleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// BeforeCreate выдаёт UUID, если id не задан вызывающим.
func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
