package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/joshijay655/justdostuff/internal/usecase"
	"github.com/joshijay655/justdostuff/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Experience   *ExperienceHandler
	Booking      *BookingHandler
	Conversation *ConversationHandler
	Review       *ReviewHandler
	Notify       *NotifyHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Profile:      NewProfileHandler(service.Profile, log),
		Experience:   NewExperienceHandler(service.Experience, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Conversation: NewConversationHandler(service.Conversation, log),
		Review:       NewReviewHandler(service.Review, log),
		Notify:       NewNotifyHandler(service.Notification, service.Profile, log),
	}
}

// decodeAndValidate parses the JSON body into dest and runs struct
// validation. On failure it writes the 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dest); validationErrors != nil {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

// respondError maps service sentinel errors onto HTTP responses. Anything
// unmapped is a 500 with the detail kept out of the response body.
func respondError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, "Resource not found")
	case errors.Is(err, usecase.ErrForbidden):
		utils.ResponseForbidden(w, "You are not allowed to perform this action")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, "Invalid email or password")
	case errors.Is(err, usecase.ErrEmailTaken):
		utils.ResponseConflict(w, "Email is already registered")
	case errors.Is(err, usecase.ErrInvalidTransition):
		utils.ResponseConflict(w, "Booking status does not allow this action")
	case errors.Is(err, usecase.ErrCapacityExceeded):
		utils.ResponseConflict(w, "This slot is fully booked")
	case errors.Is(err, usecase.ErrMissingConsent):
		utils.ResponseBadRequest(w, "Required agreements were not accepted", nil)
	case errors.Is(err, usecase.ErrMissingEmergencyContact):
		utils.ResponseBadRequest(w, "An emergency contact is required", nil)
	case errors.Is(err, usecase.ErrInvalidWindow):
		utils.ResponseBadRequest(w, "Slot end time must be after start time", nil)
	case errors.Is(err, usecase.ErrInvalidCapacity):
		utils.ResponseBadRequest(w, "Slot capacity must be at least 1", nil)
	case errors.Is(err, usecase.ErrSlotHasBookings):
		utils.ResponseConflict(w, "This slot has reserved spots and cannot be removed")
	case errors.Is(err, usecase.ErrDuplicateReview):
		utils.ResponseConflict(w, "You already reviewed this booking")
	case errors.Is(err, usecase.ErrNotBookable):
		utils.ResponseConflict(w, "This experience is not open for booking")
	case errors.Is(err, usecase.ErrVerificationPending):
		utils.ResponseConflict(w, "A verification request is already pending")
	default:
		log.Error("unhandled service error", zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong")
	}
}
