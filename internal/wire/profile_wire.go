package wire

import (
	"github.com/joshijay655/justdostuff/internal/adaptor"
	"github.com/joshijay655/justdostuff/internal/data/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(r chi.Router, profileHandler *adaptor.ProfileHandler, repo *repository.Repository, log *zap.Logger) {
	// GET /api/profiles/{id} - public view of a profile
	r.Get("/api/profiles/{id}", profileHandler.GetPublic)

	authenticated(r, repo, log, func(r chi.Router) {
		r.Get("/api/profile", profileHandler.GetMe)
		r.Put("/api/profile", profileHandler.Update)
		r.Post("/api/profile/verification", profileHandler.SubmitVerification)
	})
}
