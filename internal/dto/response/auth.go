package response

import (
	"time"

	"github.com/joshijay655/justdostuff/internal/data/entity"
)

type AuthResponse struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`
	Token      string    `json:"token,omitempty"`
	ExpiresAt  time.Time `json:"expires_at,omitempty"`
}

func AuthToResponse(profile *entity.Profile, session *entity.Session) *AuthResponse {
	resp := &AuthResponse{
		UserID:     profile.ID.String(),
		Email:      profile.Email,
		FullName:   profile.FullName,
		Role:       string(profile.Role),
		IsVerified: profile.IsVerified,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
