package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/joshijay655/justdostuff/internal/dto/request"
	"github.com/joshijay655/justdostuff/internal/usecase"
	"github.com/joshijay655/justdostuff/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotifyHandler exposes the email dispatch endpoints the web client calls
// after booking actions. Responses use the bare {"success": true} /
// {"error": "..."} shape that client expects.
type NotifyHandler struct {
	notifications *usecase.NotificationService
	profiles      *usecase.ProfileService
	log           *zap.Logger
}

func NewNotifyHandler(notifications *usecase.NotificationService, profiles *usecase.ProfileService, log *zap.Logger) *NotifyHandler {
	return &NotifyHandler{
		notifications: notifications,
		profiles:      profiles,
		log:           log.With(zap.String("handler", "notify")),
	}
}

func (h *NotifyHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}

	var req request.NotifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := utils.ValidateStruct(&req); validationErrors != nil {
		h.writeError(w, http.StatusBadRequest, utils.FormatValidationErrors(validationErrors))
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	if err := h.notifications.Dispatch(r.Context(), userID, req.Type, bookingID); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Booking not found")
			return
		}
		h.log.Error("notification dispatch failed",
			zap.String("type", req.Type),
			zap.String("booking_id", req.BookingID),
			zap.Error(err),
		)
		h.writeError(w, http.StatusInternalServerError, "Failed to send notification")
		return
	}

	h.writeSuccess(w)
}

func (h *NotifyHandler) DispatchVerification(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}

	var req request.NotifyVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.profiles.GetMe(r.Context(), userID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	name := req.UserName
	if name == "" {
		name = profile.FullName
	}

	if err := h.notifications.VerificationSubmittedFor(profile.Email, name); err != nil {
		h.log.Error("verification notification failed",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		h.writeError(w, http.StatusInternalServerError, "Failed to send notification")
		return
	}

	h.writeSuccess(w)
}

func (h *NotifyHandler) writeSuccess(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *NotifyHandler) writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
