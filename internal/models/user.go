package models

import (
	"time"

	"github.com/devforge/devforge-backend/internal/leveling"
	"github.com/google/uuid"
)

// User is a developer registered on the platform. Identity comes from an
// OAuth provider; gamification state (XP, level) is owned locally.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string    `gorm:"size:255" json:"name"`
	Email          string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	AvatarURL      string    `gorm:"size:500" json:"avatar_url"`
	Bio            string    `gorm:"size:500" json:"bio"`
	Location       string    `gorm:"size:255" json:"location"`
	GithubUsername *string   `gorm:"size:255;uniqueIndex" json:"github_username"`
	XPTotal        int       `gorm:"not null;default:0" json:"xp_total"`
	Level          string    `gorm:"size:30;not null;default:'INICIANTE I'" json:"level"`
	OnboardingDone bool      `gorm:"not null;default:false" json:"onboarding_done"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AddExperience adds non-negative XP and recomputes the level label. The
// level field is never written from anywhere else.
func (u *User) AddExperience(amount int) error {
	if amount < 0 {
		return leveling.ErrNegativeAmount
	}
	u.XPTotal += amount
	u.Level = leveling.LevelFor(u.XPTotal)
	return nil
}
