package services

import (
	"errors"
	"fmt"

	"github.com/devforge/devforge-backend/internal/dto"
	"github.com/devforge/devforge-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrChallengeNotFound = errors.New("challenge not found")

type SolutionService struct {
	db *gorm.DB
}

func NewSolutionService(db *gorm.DB) *SolutionService {
	return &SolutionService{db: db}
}

// Create registers a submission against an existing challenge. The parent
// must exist; a dangling challenge id fails the call with nothing persisted.
func (s *SolutionService) Create(req *dto.CreateSolutionRequest, challengeID uuid.UUID) (*models.Solution, error) {
	var challenge models.Challenge
	if err := s.db.First(&challenge, "id = ?", challengeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("challenge lookup failed: %w", err)
	}

	solution := models.Solution{
		AuthorName:     req.AuthorName,
		RepositoryLink: req.RepositoryLink,
		Status:         models.StatusPending,
		ChallengeID:    challenge.ID,
	}
	if err := s.db.Create(&solution).Error; err != nil {
		return nil, fmt.Errorf("failed to create solution: %w", err)
	}
	return &solution, nil
}

func (s *SolutionService) ListByChallenge(challengeID uuid.UUID) ([]models.Solution, error) {
	var solutions []models.Solution
	err := s.db.Where("challenge_id = ?", challengeID).Order("created_at ASC").Find(&solutions).Error
	return solutions, err
}
