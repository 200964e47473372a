package response

import (
	"time"

	"hoa_stickers/internal/domain/entities"
)

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type SessionResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         UserResponse `json:"user"`
}

func FromUser(u entities.AuthUser) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email}
}

func FromSession(s entities.AuthSession) SessionResponse {
	return SessionResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.ExpiresAt,
		User:         FromUser(s.User),
	}
}
