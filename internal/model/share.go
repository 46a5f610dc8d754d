package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role - уровень доступа, выданный через share.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleOwner  Role = "owner"
)

// Valid сообщает, входит ли роль в допустимый набор.
func (r Role) Valid() bool {
	switch r {
	case RoleViewer, RoleEditor, RoleOwner:
		return true
	}
	return false
}

// Share - выдача доступа к файлу по email. Одна запись на пару (file_id, shared_with_email).
type Share struct {
	ID              string `gorm:"primaryKey;type:uuid" json:"id"`
	FileID          string `gorm:"type:uuid;not null;uniqueIndex:idx_shares_file_email" json:"file_id"`
	SharedWithEmail string `gorm:"not null;uniqueIndex:idx_shares_file_email;index" json:"shared_with_email"`
	Role            Role   `gorm:"type:varchar(16);not null" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (s *Share) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
