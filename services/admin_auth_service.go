package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminSuspended     = errors.New("admin account is suspended")
)

// AdminAuthService handles admin authentication operations
type AdminAuthService struct{}

func NewAdminAuthService() *AdminAuthService {
	return &AdminAuthService{}
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt
func (s *AdminAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AdminAuthService) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword checks the minimum length of 8 characters
func (s *AdminAuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}

// HashToken hashes a token using SHA256 for storage in database
func (s *AdminAuthService) HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// ════════════════════════════════════════════════════════════
// Login
// ════════════════════════════════════════════════════════════

// Authenticate loads the admin for email and checks password. Unknown
// emails and wrong passwords both return ErrInvalidCredentials.
func (s *AdminAuthService) Authenticate(ctx context.Context, email, password string) (*models.Admin, error) {
	admin, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !s.VerifyPassword(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// FindByEmail returns an active or inactive admin; suspended accounts are refused.
func (s *AdminAuthService) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := config.Gorm.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load admin: %w", err)
	}
	if admin.Status == "suspended" {
		return nil, ErrAdminSuspended
	}
	return &admin, nil
}

// MarkLogin records a successful login.
func (s *AdminAuthService) MarkLogin(ctx context.Context, admin *models.Admin) error {
	now := time.Now()
	admin.LastLoginAt = &now
	admin.Status = "active"
	return config.Gorm.WithContext(ctx).
		Model(admin).
		Updates(map[string]interface{}{"last_login_at": now, "status": "active"}).Error
}

// ════════════════════════════════════════════════════════════
// Admin Status Management
// ════════════════════════════════════════════════════════════

// IsStatusInactive reports whether the last login is more than 7 days ago
func (s *AdminAuthService) IsStatusInactive(lastLoginAt *time.Time) bool {
	if lastLoginAt == nil {
		return false
	}
	return lastLoginAt.Before(time.Now().AddDate(0, 0, -7))
}

// GetAdminStatus calculates the current status based on last login.
// Suspended stays suspended.
func (s *AdminAuthService) GetAdminStatus(currentStatus string, lastLoginAt *time.Time) string {
	if currentStatus == "suspended" {
		return "suspended"
	}
	if s.IsStatusInactive(lastLoginAt) {
		return "inactive"
	}
	return "active"
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var adminAuthService *AdminAuthService

func GetAdminAuthService() *AdminAuthService {
	if adminAuthService == nil {
		adminAuthService = NewAdminAuthService()
	}
	return adminAuthService
}

func HashAdminPassword(password string) (string, error) {
	return GetAdminAuthService().HashPassword(password)
}

func VerifyAdminPassword(hash, password string) bool {
	return GetAdminAuthService().VerifyPassword(hash, password)
}

func ValidateAdminPassword(password string) bool {
	return GetAdminAuthService().ValidatePassword(password)
}

func HashAdminToken(token string) string {
	return GetAdminAuthService().HashToken(token)
}

func GetCalculatedAdminStatus(currentStatus string, lastLoginAt *time.Time) string {
	return GetAdminAuthService().GetAdminStatus(currentStatus, lastLoginAt)
}
