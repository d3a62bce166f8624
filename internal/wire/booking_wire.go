package wire

import (
	"github.com/joshijay655/justdostuff/internal/adaptor"
	"github.com/joshijay655/justdostuff/internal/data/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, repo *repository.Repository, log *zap.Logger) {
	authenticated(r, repo, log, func(r chi.Router) {
		// POST /api/bookings - request a spot on a slot
		r.Post("/api/bookings", bookingHandler.Create)

		// Booking lists for both sides of the marketplace
		r.Get("/api/seeker/bookings", bookingHandler.ListAsSeeker)
		r.Get("/api/provider/bookings", bookingHandler.ListAsProvider)

		r.Get("/api/bookings/{id}", bookingHandler.Get)

		// Lifecycle transitions
		r.Post("/api/bookings/{id}/confirm", bookingHandler.Confirm)
		r.Post("/api/bookings/{id}/decline", bookingHandler.Decline)
		r.Post("/api/bookings/{id}/cancel", bookingHandler.Cancel)
		r.Post("/api/bookings/{id}/start", bookingHandler.Start)
		r.Post("/api/bookings/{id}/complete", bookingHandler.Complete)
	})
}
