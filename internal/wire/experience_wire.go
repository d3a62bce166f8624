package wire

import (
	"github.com/joshijay655/justdostuff/internal/adaptor"
	"github.com/joshijay655/justdostuff/internal/data/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireExperience(
	r chi.Router,
	experienceHandler *adaptor.ExperienceHandler,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public catalog routes
	r.Get("/api/categories", experienceHandler.ListCategories)
	r.Get("/api/experiences", experienceHandler.List)
	r.Get("/api/experiences/{id}", experienceHandler.Get)
	r.Get("/api/experiences/{id}/slots", experienceHandler.ListSlots)
	r.Get("/api/experiences/{id}/reviews", reviewHandler.ListByExperience)

	// Provider routes
	authenticated(r, repo, log, func(r chi.Router) {
		r.Post("/api/experiences", experienceHandler.Create)
		r.Get("/api/provider/experiences", experienceHandler.ListMine)
		r.Put("/api/experiences/{id}", experienceHandler.Update)
		r.Post("/api/experiences/{id}/publish", experienceHandler.Publish)
		r.Post("/api/experiences/{id}/archive", experienceHandler.Archive)

		r.Post("/api/experiences/{id}/slots", experienceHandler.CreateSlot)
		r.Delete("/api/experiences/{id}/slots/{slotId}", experienceHandler.DeleteSlot)
	})
}
