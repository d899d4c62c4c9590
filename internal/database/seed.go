package database

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/devforge/devforge-backend/internal/models"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type seedChallenge struct {
	Title                  string `yaml:"title"`
	Context                string `yaml:"context"`
	FunctionalRequirements string `yaml:"functional_requirements"`
	TechnicalRequirements  string `yaml:"technical_requirements"`
	SeniorityTier          string `yaml:"seniority_tier"`
	Stack                  string `yaml:"stack"`
}

type seedCatalog struct {
	Challenges []seedChallenge `yaml:"challenges"`
}

// Seed inserts the starter challenge catalog when the table is empty.
// Seeded challenges are pre-approved; they come from us, not from users.
func Seed(db *gorm.DB, path string) error {
	var count int64
	if err := db.Model(&models.Challenge{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		slog.Info("challenges already present, skipping seed", "count", count)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("seed catalog not found, starting empty", "path", path, "error", err)
		return nil
	}

	var catalog seedCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("failed to parse seed catalog: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, sc := range catalog.Challenges {
			ch := models.Challenge{
				Title:                  sc.Title,
				Context:                sc.Context,
				FunctionalRequirements: sc.FunctionalRequirements,
				TechnicalRequirements:  sc.TechnicalRequirements,
				SeniorityTier:          sc.SeniorityTier,
				Stack:                  sc.Stack,
				Status:                 models.StatusApproved,
			}
			if err := tx.Create(&ch).Error; err != nil {
				return err
			}
		}
		slog.Info("seed catalog inserted", "challenges", len(catalog.Challenges))
		return nil
	})
}
