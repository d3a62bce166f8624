package request

type NotifyRequest struct {
	Type      string `json:"type" validate:"required,oneof=booking_requested booking_confirmed booking_declined"`
	BookingID string `json:"bookingId" validate:"required,uuid4"`
}

type NotifyVerificationRequest struct {
	UserName string `json:"userName"`
}
