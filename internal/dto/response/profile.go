package response

import (
	"time"

	"github.com/joshijay655/justdostuff/internal/data/entity"
)

type ProfileResponse struct {
	ID                    string    `json:"id"`
	Email                 string    `json:"email"`
	FullName              string    `json:"full_name"`
	AvatarURL             *string   `json:"avatar_url,omitempty"`
	Bio                   *string   `json:"bio,omitempty"`
	Role                  string    `json:"role"`
	Phone                 *string   `json:"phone,omitempty"`
	City                  *string   `json:"city,omitempty"`
	State                 *string   `json:"state,omitempty"`
	IsVerified            bool      `json:"is_verified"`
	EmergencyContactName  *string   `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string   `json:"emergency_contact_phone,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

func ProfileToResponse(profile *entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                    profile.ID.String(),
		Email:                 profile.Email,
		FullName:              profile.FullName,
		AvatarURL:             profile.AvatarURL,
		Bio:                   profile.Bio,
		Role:                  string(profile.Role),
		Phone:                 profile.Phone,
		City:                  profile.City,
		State:                 profile.State,
		IsVerified:            profile.IsVerified,
		EmergencyContactName:  profile.EmergencyContactName,
		EmergencyContactPhone: profile.EmergencyContactPhone,
		CreatedAt:             profile.CreatedAt,
	}
}

type PublicProfileResponse struct {
	ID         string  `json:"id"`
	FullName   string  `json:"full_name"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	IsVerified bool    `json:"is_verified"`
}

func ProfileToPublicResponse(profile *entity.Profile) PublicProfileResponse {
	return PublicProfileResponse{
		ID:         profile.ID.String(),
		FullName:   profile.FullName,
		AvatarURL:  profile.AvatarURL,
		Bio:        profile.Bio,
		City:       profile.City,
		State:      profile.State,
		IsVerified: profile.IsVerified,
	}
}
