package wire

import (
	"net/http"

	"github.com/joshijay655/justdostuff/internal/adaptor"
	"github.com/joshijay655/justdostuff/internal/data/repository"
	"github.com/joshijay655/justdostuff/internal/usecase"
	"github.com/joshijay655/justdostuff/pkg/cache"
	"github.com/joshijay655/justdostuff/pkg/mailer"
	"github.com/joshijay655/justdostuff/pkg/middleware"
	"github.com/joshijay655/justdostuff/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts all routes.
func Wiring(repo *repository.Repository, cache *cache.Cache, mail mailer.Mailer, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, cache, mail, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, repo *repository.Repository, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS)

	wireAuth(r, handler.Auth, repo, logger)
	wireProfile(r, handler.Profile, repo, logger)
	wireExperience(r, handler.Experience, handler.Review, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireConversation(r, handler.Conversation, repo, logger)
	wireNotify(r, handler.Notify, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

// authenticated wraps a route group with the session middleware.
func authenticated(r chi.Router, repo *repository.Repository, log *zap.Logger, fn func(r chi.Router)) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(repo.Session, repo.Profile, log))
		fn(r)
	})
}
