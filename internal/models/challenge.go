package models

import (
	"time"

	"github.com/google/uuid"
)

// Challenge approval states. Creation only ever produces PENDING or APPROVED;
// REJECTED is set by human moderation outside this service.
const (
	StatusPending     = "PENDING"
	StatusApproved    = "APPROVED"
	StatusRejected    = "REJECTED"
	StatusUnderReview = "UNDER_REVIEW"
)

// Challenge is a technical brief proposed by a user: the business scenario
// plus what to build and how. Only APPROVED challenges are publicly listed.
type Challenge struct {
	ID                     uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title                  string     `gorm:"size:255;not null" json:"title"`
	Context                string     `gorm:"type:text;not null" json:"context"`
	FunctionalRequirements string     `gorm:"type:text;not null" json:"functional_requirements"`
	TechnicalRequirements  string     `gorm:"type:text;not null" json:"technical_requirements"`
	SeniorityTier          string     `gorm:"size:30;not null" json:"seniority_tier"`
	Stack                  string     `gorm:"size:255;not null" json:"stack"`
	Status                 string     `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	CreatorID              *uuid.UUID `gorm:"type:uuid;index" json:"creator_id"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
	Creator                *User      `gorm:"foreignKey:CreatorID" json:"-"`
}
