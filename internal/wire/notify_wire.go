package wire

import (
	"github.com/joshijay655/justdostuff/internal/adaptor"
	"github.com/joshijay655/justdostuff/internal/data/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNotify(r chi.Router, notifyHandler *adaptor.NotifyHandler, repo *repository.Repository, log *zap.Logger) {
	authenticated(r, repo, log, func(r chi.Router) {
		r.Post("/api/notify", notifyHandler.Dispatch)
		r.Post("/api/notify/verification", notifyHandler.DispatchVerification)
	})
}
