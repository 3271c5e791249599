package services

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/util"
	apperrors "portfolio-backend/pkg/errors"
)

// AuthService issues admin tokens. It is inert unless admin credentials are
// configured; without them the message listing stays open, matching the
// public contract.
type AuthService struct {
	db  *gorm.DB
	cfg *config.AdminConfig
}

// NewAuthService creates a new auth service
func NewAuthService(db *gorm.DB, cfg *config.AdminConfig) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Enabled reports whether admin authentication is configured.
func (s *AuthService) Enabled() bool {
	return s.cfg.Enabled()
}

// Login verifies the admin credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if !s.Enabled() {
		return "", apperrors.New(apperrors.ErrCodeUnauthorized, "admin authentication is not configured")
	}

	var user domain.AdminUser
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[AUTH] Login failed: unknown user %q", username)
			return "", apperrors.New(apperrors.ErrCodeUnauthorized, "invalid credentials")
		}
		return "", apperrors.Persistence("failed to look up admin user", err)
	}

	if !util.CheckPassword(password, user.HashedPassword) {
		log.Printf("[AUTH] Login failed: bad password for %q", username)
		return "", apperrors.New(apperrors.ErrCodeUnauthorized, "invalid credentials")
	}

	expiry := time.Duration(s.cfg.TokenExpiryMinutes) * time.Minute
	token, err := util.GenerateToken(user.Username, s.cfg.SecretKey, expiry)
	if err != nil {
		return "", err
	}

	log.Printf("[AUTH] Login successful for %q", username)
	return token, nil
}

// Verify validates a bearer token and returns the admin username.
func (s *AuthService) Verify(token string) (string, error) {
	claims, err := util.ValidateToken(token, s.cfg.SecretKey)
	if err != nil {
		return "", apperrors.New(apperrors.ErrCodeUnauthorized, "invalid or expired token")
	}
	return claims.Username, nil
}
