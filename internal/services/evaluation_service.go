package services

import (
	"errors"
	"fmt"

	"github.com/devforge/devforge-backend/internal/dto"
	"github.com/devforge/devforge-backend/internal/metrics"
	"github.com/devforge/devforge-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSolutionNotFound = errors.New("solution not found")

type EvaluationService struct {
	db *gorm.DB
}

func NewEvaluationService(db *gorm.DB) *EvaluationService {
	return &EvaluationService{db: db}
}

// Create records a review of a solution. A max-score review approves the
// solution in the same transaction as the evaluation insert; any other score
// leaves the solution untouched. A dangling solution id persists nothing.
func (s *EvaluationService) Create(req *dto.CreateEvaluationRequest, solutionID uuid.UUID) (*models.Evaluation, error) {
	var evaluation models.Evaluation

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var solution models.Solution
		if err := tx.First(&solution, "id = ?", solutionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSolutionNotFound
			}
			return fmt.Errorf("solution lookup failed: %w", err)
		}

		evaluation = models.Evaluation{
			Score:      req.Score,
			Comment:    req.Comment,
			SolutionID: solution.ID,
		}
		if err := tx.Create(&evaluation).Error; err != nil {
			return fmt.Errorf("failed to create evaluation: %w", err)
		}

		if shouldApprove(evaluation.Score) {
			if err := tx.Model(&solution).Update("status", models.StatusApproved).Error; err != nil {
				return fmt.Errorf("failed to approve solution: %w", err)
			}
			metrics.SolutionsAutoApproved.Inc()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.EvaluationsRecorded.Inc()
	return &evaluation, nil
}

// shouldApprove is the single rule of the solution state machine this
// service owns: only a maximum score flips PENDING to APPROVED.
func shouldApprove(score int) bool {
	return score == models.MaxScore
}
