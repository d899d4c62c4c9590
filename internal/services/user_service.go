package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devforge/devforge-backend/internal/dto"
	"github.com/devforge/devforge-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CompleteOnboarding confirms the welcome screen: optionally renames the
// user, then marks the account as fully registered.
func (s *UserService) CompleteOnboarding(email string, name string) (*models.User, error) {
	user, err := s.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	if trimmed := strings.TrimSpace(name); trimmed != "" {
		user.Name = trimmed
	}
	user.OnboardingDone = true

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to complete onboarding: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial profile update. Users can only edit their
// own record; acting on someone else's id is denied without mutation.
func (s *UserService) UpdateProfile(actorEmail string, targetID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Email != actorEmail {
		return nil, ErrAccessDenied
	}

	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.GithubUsername != nil {
		user.GithubUsername = req.GithubUsername
	}
	if req.OnboardingDone {
		user.OnboardingDone = true
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

// GrantExperience adds XP for a gameplay event (approved challenge, review
// done) and persists the recomputed level. Which events grant how much XP is
// the caller's business.
func (s *UserService) GrantExperience(userID uuid.UUID, amount int) (*models.User, error) {
	var user models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if err := user.AddExperience(amount); err != nil {
			return err
		}
		return tx.Model(&user).Updates(map[string]interface{}{
			"xp_total": user.XPTotal,
			"level":    user.Level,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
