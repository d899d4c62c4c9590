package dto

import "github.com/devforge/devforge-backend/internal/models"

// OAuthCallbackRequest carries the provider's flat attribute map, already
// fetched by the OAuth handshake layer in front of this API.
type OAuthCallbackRequest struct {
	Attributes map[string]string `json:"attributes"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		AvatarURL:      u.AvatarURL,
		Bio:            u.Bio,
		Location:       u.Location,
		GithubUsername: u.GithubUsername,
		XPTotal:        u.XPTotal,
		Level:          u.Level,
		OnboardingDone: u.OnboardingDone,
	}
}
