package request

type CreateBookingRequest struct {
	ExperienceID   string `json:"experience_id" validate:"required,uuid4"`
	AvailabilityID string `json:"availability_id" validate:"required,uuid4"`

	// Consent checkboxes from the booking form. NDA is required only when
	// the experience is flagged requires_nda.
	TosAccepted    bool `json:"tos_accepted"`
	WaiverAccepted bool `json:"waiver_accepted"`
	NdaAccepted    bool `json:"nda_accepted"`

	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}
