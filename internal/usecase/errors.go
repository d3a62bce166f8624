package usecase

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP status codes with errors.Is.
var (
	ErrNotFound                = errors.New("resource not found")
	ErrForbidden               = errors.New("not allowed to perform this action")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrEmailTaken              = errors.New("email is already registered")
	ErrInvalidTransition       = errors.New("booking status does not allow this transition")
	ErrCapacityExceeded        = errors.New("availability slot is full")
	ErrMissingConsent          = errors.New("required agreements were not accepted")
	ErrMissingEmergencyContact = errors.New("emergency contact is required")
	ErrInvalidWindow           = errors.New("slot end time must be after start time")
	ErrInvalidCapacity         = errors.New("slot capacity must be at least 1")
	ErrSlotHasBookings         = errors.New("slot has reserved spots and cannot be removed")
	ErrDuplicateReview         = errors.New("booking was already reviewed by this user")
	ErrNotBookable             = errors.New("experience is not open for booking")
	ErrVerificationPending     = errors.New("a verification request is already pending")
)
