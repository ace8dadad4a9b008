package model

import "time"

// CredentialModel mirrors the 'user_credentials' table used by the local
// identity provider. It is keyed by the normalized email so it can exist
// before the profile row does.
type CredentialModel struct {
	Email          string  `gorm:"type:varchar(320);primaryKey"`
	PasswordHash   string  `gorm:"type:varchar(255);not null"`
	ResetToken     *string `gorm:"type:varchar(64)"`
	ResetExpiresAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "user_credentials"
}

// All lists every model managed by schema migration.
func All() []any {
	return []any{&UserModel{}, &CredentialModel{}}
}
