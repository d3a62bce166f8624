package adaptor

import (
	"context"
	"net/http"

	"github.com/joshijay655/justdostuff/internal/dto/request"
	"github.com/joshijay655/justdostuff/internal/usecase"
	"github.com/joshijay655/justdostuff/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service *usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service *usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user identity")
		return
	}

	var req request.CreateBookingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Booking requested", result)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, bookingID, ok := h.identifiers(w, r)
	if !ok {
		return
	}

	result, err := h.service.Get(r.Context(), userID, bookingID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", result)
}

func (h *BookingHandler) ListAsSeeker(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user identity")
		return
	}

	result, err := h.service.ListAsSeeker(r.Context(), userID, paginationFromQuery(r))
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", result)
}

func (h *BookingHandler) ListAsProvider(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user identity")
		return
	}

	result, err := h.service.ListAsProvider(r.Context(), userID, paginationFromQuery(r))
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", result)
}

func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Confirm, "Booking confirmed")
}

func (h *BookingHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Decline, "Booking declined")
}

func (h *BookingHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Start, "Booking started")
}

func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Complete, "Booking completed")
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, bookingID, ok := h.identifiers(w, r)
	if !ok {
		return
	}

	var req request.CancelBookingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.Cancel(r.Context(), userID, bookingID, &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", nil)
}

func (h *BookingHandler) transition(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, userID, bookingID uuid.UUID) error, message string) {
	userID, bookingID, ok := h.identifiers(w, r)
	if !ok {
		return
	}

	if err := apply(r.Context(), userID, bookingID); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, message, nil)
}

func (h *BookingHandler) identifiers(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user identity")
		return uuid.Nil, uuid.Nil, false
	}

	bookingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return uuid.Nil, uuid.Nil, false
	}

	return userID, bookingID, true
}

func paginationFromQuery(r *http.Request) request.PaginatedRequest {
	return request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}
}
