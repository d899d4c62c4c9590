package dto

import "github.com/google/uuid"

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	AvatarURL      string    `json:"avatar_url"`
	Bio            string    `json:"bio"`
	Location       string    `json:"location"`
	GithubUsername *string   `json:"github_username"`
	XPTotal        int       `json:"xp_total"`
	Level          string    `json:"level"`
	OnboardingDone bool      `json:"onboarding_done"`
}

type CompleteOnboardingRequest struct {
	Name string `json:"name"`
}

// UpdateUserRequest is a partial update; nil pointer fields are left alone.
type UpdateUserRequest struct {
	Bio            *string `json:"bio"`
	Location       *string `json:"location"`
	GithubUsername *string `json:"github_username"`
	OnboardingDone bool    `json:"onboarding_done"`
}

type GrantExperienceRequest struct {
	Amount int `json:"amount"`
}
