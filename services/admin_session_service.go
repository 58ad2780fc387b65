package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// ErrSessionInactive means the token was valid but its session was logged out.
var ErrSessionInactive = errors.New("session is no longer active")

// AdminSessionService handles admin session operations
type AdminSessionService struct{}

func NewAdminSessionService() *AdminSessionService {
	return &AdminSessionService{}
}

// CreateSession records a login so the token can be revoked later
func (s *AdminSessionService) CreateSession(
	ctx context.Context,
	adminID uuid.UUID,
	token string,
	expiresAt time.Time,
	ipAddress string,
	userAgent string,
) (*models.AdminSession, error) {
	session := &models.AdminSession{
		AdminID:        adminID,
		TokenHash:      HashAdminToken(token),
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		LastActivityAt: time.Now(),
		ExpiresAt:      expiresAt,
		IsActive:       true,
	}

	if err := config.Gorm.WithContext(ctx).Create(session).Error; err != nil {
		log.Printf("[session] failed to create session: %v", err)
		return nil, err
	}

	log.Printf("[session] created session %s for admin %s", session.ID, adminID)
	return session, nil
}

// TouchSession checks that the session behind tokenHash is still active and
// bumps its last activity timestamp.
func (s *AdminSessionService) TouchSession(ctx context.Context, tokenHash string) error {
	result := config.Gorm.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("token_hash = ? AND is_active = ? AND expires_at > ?", tokenHash, true, time.Now()).
		Update("last_activity_at", time.Now())
	if result.Error != nil {
		log.Printf("[session] failed to update session activity: %v", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionInactive
	}
	return nil
}

// DeactivateSession marks the session for one token inactive (logout)
func (s *AdminSessionService) DeactivateSession(ctx context.Context, tokenHash string) error {
	if err := config.Gorm.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("token_hash = ?", tokenHash).
		Update("is_active", false).Error; err != nil {
		log.Printf("[session] failed to deactivate session: %v", err)
		return err
	}
	return nil
}

// CleanupExpiredSessions removes expired sessions and logged-out ones older
// than models.AdminSessionRetention.
func (s *AdminSessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	now := time.Now()
	result := config.Gorm.WithContext(ctx).
		Where("expires_at < ? OR (is_active = ? AND last_activity_at < ?)",
			now,
			false,
			now.Add(-models.AdminSessionRetention),
		).
		Delete(&models.AdminSession{})

	if result.Error != nil {
		log.Printf("[session] failed to cleanup expired sessions: %v", result.Error)
		return 0, result.Error
	}

	log.Printf("[session] cleaned up %d expired sessions", result.RowsAffected)
	return result.RowsAffected, nil
}

// RunSessionJanitor calls CleanupExpiredSessions every interval until ctx is done.
func (s *AdminSessionService) RunSessionJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cctx, cancel := config.WithTimeout()
			_, _ = s.CleanupExpiredSessions(cctx)
			cancel()
		}
	}
}

var adminSessionService *AdminSessionService

func GetAdminSessionService() *AdminSessionService {
	if adminSessionService == nil {
		adminSessionService = NewAdminSessionService()
	}
	return adminSessionService
}
