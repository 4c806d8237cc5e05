package dto

import "github.com/mediapublic/mediapublic/internal/models"

// SocialLoginRequest carries what the OAuth callback learned about the
// social account.
type SocialLoginRequest struct {
	Provider    string `json:"provider"`
	Handle      string `json:"handle"`
	AccountID   string `json:"account_id"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
	AuthToken   string `json:"auth_token"`
	AuthSecret  string `json:"auth_secret"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	Existed     bool         `json:"existed"`
	User        *models.User `json:"user"`
}

// PlaylistResponse embeds the resolved recordings the way the playlist
// page consumes them.
type PlaylistResponse struct {
	models.Playlist
	Recordings []models.Recording `json:"recordings"`
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
