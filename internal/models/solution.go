package models

import (
	"time"

	"github.com/google/uuid"
)

// Solution is a code submission against a Challenge. Author is free text for
// now; linking it to the reconciled User is an open gap.
type Solution struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AuthorName     string    `gorm:"size:255" json:"author_name"`
	RepositoryLink string    `gorm:"size:500" json:"repository_link"`
	Status         string    `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	ChallengeID    uuid.UUID `gorm:"type:uuid;not null;index" json:"challenge_id"`
	CreatedAt      time.Time `json:"created_at"`
	Challenge      Challenge `gorm:"foreignKey:ChallengeID" json:"-"`
}
