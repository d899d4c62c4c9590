package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/devforge/devforge-backend/internal/config"
	"github.com/devforge/devforge-backend/internal/dto"
	"github.com/devforge/devforge-backend/internal/identity"
	"github.com/devforge/devforge-backend/internal/leveling"
	"github.com/devforge/devforge-backend/internal/metrics"
	"github.com/devforge/devforge-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidToken = errors.New("invalid or expired refresh token")
	ErrAccessDenied = errors.New("you can only edit your own profile")
)

// DefaultBio is assigned on first registration; the user replaces it during
// onboarding.
const DefaultBio = "Entusiasta de tecnologia pronto para desafios."

// AuthService reconciles provider identities into local users and owns the
// session token pair issued afterwards.
type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Reconcile maps the provider's attribute set to a canonical identity and
// upserts the user record. The attribute map arrives already fetched by the
// OAuth handshake layer; no network calls happen here.
func (s *AuthService) Reconcile(providerID string, attrs map[string]string) (*dto.AuthResponse, error) {
	provider, err := identity.ProviderFor(providerID)
	if err != nil {
		return nil, err
	}

	ident, err := provider.Resolve(attrs)
	if err != nil {
		metrics.Reconciliations.WithLabelValues(providerID, "failed").Inc()
		slog.Error("identity resolution failed", "provider", providerID, "error", err)
		return nil, err
	}

	user, outcome, err := s.upsert(ident)
	if err != nil {
		metrics.Reconciliations.WithLabelValues(ident.Provider, "failed").Inc()
		return nil, err
	}
	metrics.Reconciliations.WithLabelValues(ident.Provider, outcome).Inc()

	return s.generateTokenPair(user)
}

// upsert looks the user up by email and either applies the returning-user
// merge or registers a new record. Returns "created" or "returning".
func (s *AuthService) upsert(ident identity.Identity) (*models.User, string, error) {
	var user models.User
	err := s.db.Where("email = ?", ident.Email).First(&user).Error
	if err == nil {
		return s.updateReturning(&user, ident)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("user lookup failed: %w", err)
	}

	user = models.User{
		Name:           ident.Name,
		Email:          ident.Email,
		AvatarURL:      ident.AvatarURL,
		GithubUsername: ident.GithubUsername,
		Bio:            DefaultBio,
		XPTotal:        0,
		Level:          leveling.Lowest,
		OnboardingDone: false,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Two first logins with the same brand-new email can race; the
		// unique index makes the loser land here. Re-read and treat the
		// call as a returning-user reconciliation.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			slog.Info("concurrent registration detected, retrying as returning user", "email", ident.Email)
			var existing models.User
			if err := s.db.Where("email = ?", ident.Email).First(&existing).Error; err != nil {
				return nil, "", fmt.Errorf("re-read after duplicate failed: %w", err)
			}
			return s.updateReturning(&existing, ident)
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("new user registered", "email", user.Email, "provider", ident.Provider)
	return &user, "created", nil
}

func (s *AuthService) updateReturning(user *models.User, ident identity.Identity) (*models.User, string, error) {
	if mergeReturning(user, ident) {
		if err := s.db.Save(user).Error; err != nil {
			return nil, "", fmt.Errorf("failed to update user: %w", err)
		}
	}
	return user, "returning", nil
}

// mergeReturning applies the conservative gap-fill policy for repeat logins:
// only blank fields are filled, populated ones are never overwritten, and
// onboarding/XP/level are untouched. Reports whether anything changed.
func mergeReturning(user *models.User, ident identity.Identity) bool {
	changed := false
	if user.AvatarURL == "" && ident.AvatarURL != "" {
		user.AvatarURL = ident.AvatarURL
		changed = true
	}
	if user.GithubUsername == nil && ident.GithubUsername != nil {
		user.GithubUsername = ident.GithubUsername
		changed = true
	}
	return changed
}

func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	s.db.Model(&stored).Update("revoked", true)

	var user models.User
	if err := s.db.First(&user, "id = ?", stored.UserID).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	return s.generateTokenPair(&user)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

func (s *AuthService) generateTokenPair(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
