package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxScore auto-approves the evaluated solution.
const MaxScore = 5

// Evaluation is a peer review of a Solution, immutable once created.
type Evaluation struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Score      int       `gorm:"not null" json:"score"`
	Comment    string    `gorm:"type:text" json:"comment"`
	SolutionID uuid.UUID `gorm:"type:uuid;not null;index" json:"solution_id"`
	CreatedAt  time.Time `json:"created_at"`
	Solution   Solution  `gorm:"foreignKey:SolutionID" json:"-"`
}
