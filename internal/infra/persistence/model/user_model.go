// Package model holds the GORM persistence models of the user service.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are assigned by the application,
// either the identity provider's subject or a UUIDv7.
type UserModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email               string     `gorm:"type:varchar(320);uniqueIndex;not null"`
	FullName            string     `gorm:"type:varchar(200);not null;default:''"`
	Role                string     `gorm:"type:varchar(64);not null;default:'User'"`
	IsActive            bool       `gorm:"not null;default:false"`
	ActivationToken     *string    `gorm:"type:varchar(128);index"`
	ActivationExpiresAt *time.Time
	CreatedAt           time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt           *time.Time `gorm:"autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
