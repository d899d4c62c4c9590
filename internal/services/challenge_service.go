package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/devforge/devforge-backend/internal/cache"
	"github.com/devforge/devforge-backend/internal/dto"
	"github.com/devforge/devforge-backend/internal/metrics"
	"github.com/devforge/devforge-backend/internal/models"
	"github.com/devforge/devforge-backend/internal/moderation"
	"gorm.io/gorm"
)

// MinContextLength keeps briefs from being one-liners; a challenge needs a
// story worth solving.
const MinContextLength = 20

var ErrContextTooShort = errors.New("challenge context must be detailed")

type ChallengeService struct {
	db      *gorm.DB
	filter  *moderation.Filter
	listing *cache.ListingCache
}

func NewChallengeService(db *gorm.DB, filter *moderation.Filter, listing *cache.ListingCache) *ChallengeService {
	return &ChallengeService{db: db, filter: filter, listing: listing}
}

// Create runs the new challenge through the moderation filter. Safe content
// is published immediately; anything flagged stays PENDING for human review.
// There is no path to REJECTED here.
func (s *ChallengeService) Create(ctx context.Context, req *dto.CreateChallengeRequest) (*models.Challenge, error) {
	if utf8.RuneCountInString(strings.TrimSpace(req.Context)) < MinContextLength {
		return nil, ErrContextTooShort
	}

	ch := models.Challenge{
		Title:                  req.Title,
		Context:                req.Context,
		FunctionalRequirements: req.FunctionalRequirements,
		TechnicalRequirements:  req.TechnicalRequirements,
		SeniorityTier:          req.SeniorityTier,
		Stack:                  req.Stack,
	}

	verdict := s.filter.Check(challengeText(&ch))
	if verdict.Safe {
		ch.Status = models.StatusApproved
	} else {
		ch.Status = models.StatusPending
		metrics.ModerationBlocked.Inc()
		slog.Info("challenge held for human review", "title", ch.Title, "term", verdict.Term)
	}

	if err := s.db.Create(&ch).Error; err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}
	metrics.ChallengesCreated.WithLabelValues(ch.Status).Inc()

	if ch.Status == models.StatusApproved {
		s.listing.Invalidate(ctx)
	}
	return &ch, nil
}

// ListApproved returns the public listing: approved challenges only, with an
// optional case-insensitive seniority tier filter. The APPROVED filter is a
// security invariant, not a display preference.
func (s *ChallengeService) ListApproved(ctx context.Context, tier string) ([]models.Challenge, error) {
	if challenges, ok := s.listing.Get(ctx, tier); ok {
		return challenges, nil
	}

	query := s.db.Where("status = ?", models.StatusApproved)
	if tier != "" {
		query = query.Where("LOWER(seniority_tier) = LOWER(?)", tier)
	}

	var challenges []models.Challenge
	if err := query.Order("created_at DESC").Find(&challenges).Error; err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}

	s.listing.Set(ctx, tier, challenges)
	return challenges, nil
}

// challengeText concatenates every user-authored field for a single
// moderation sweep.
func challengeText(ch *models.Challenge) string {
	return strings.Join([]string{
		ch.Title,
		ch.Context,
		ch.FunctionalRequirements,
		ch.TechnicalRequirements,
	}, " ")
}
