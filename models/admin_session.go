package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// AdminSessionDefaultTTL applies when a session is created without an
	// expiry; logins normally pass the JWT expiry.
	AdminSessionDefaultTTL = 24 * time.Hour
	// AdminSessionRetention is how long logged-out sessions are kept for the
	// back office audit trail before the janitor deletes them.
	AdminSessionRetention = 7 * 24 * time.Hour
)

// AdminSession ties one issued back office token to its admin. Only the
// token hash is stored; logging out flips IsActive so the still-signed JWT
// stops working.
type AdminSession struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID        uuid.UUID `json:"admin_id" gorm:"type:uuid;not null;index"`
	TokenHash      string    `json:"-" gorm:"not null;uniqueIndex"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	LastActivityAt time.Time `json:"last_activity_at" gorm:"index"`
	ExpiresAt      time.Time `json:"expires_at" gorm:"index"`
	IsActive       bool      `json:"is_active" gorm:"default:true;index"`
}

func (as *AdminSession) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if as.ID == uuid.Nil {
		as.ID = uuid.Must(uuid.NewV7())
	}
	if as.ExpiresAt.IsZero() {
		as.ExpiresAt = now.Add(AdminSessionDefaultTTL)
	}
	if as.LastActivityAt.IsZero() {
		as.LastActivityAt = now
	}
	return nil
}

func (AdminSession) TableName() string {
	return "admin_sessions"
}
