package request

type UpdateProfileRequest struct {
	FullName              string  `json:"full_name" validate:"required,min=2,max=100"`
	AvatarURL             *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Bio                   *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Role                  string  `json:"role" validate:"required,oneof=seeker provider both"`
	Phone                 *string `json:"phone,omitempty"`
	City                  *string `json:"city,omitempty"`
	State                 *string `json:"state,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
}

type SubmitVerificationRequest struct {
	DocumentURL *string `json:"document_url,omitempty" validate:"omitempty,url"`
	Note        *string `json:"note,omitempty" validate:"omitempty,max=1000"`
}
