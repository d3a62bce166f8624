package middleware

import (
	"net/http"
	"strings"

	"github.com/joshijay655/justdostuff/internal/data/repository"
	"github.com/joshijay655/justdostuff/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the bearer session token and injects the user identity
// into the request context.
func Auth(sessionRepo repository.SessionRepository, profileRepo repository.ProfileRepository, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization header")
				return
			}

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				utils.ResponseUnauthorized(w, "Invalid authorization header")
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				log.Error("session lookup failed", zap.Error(err))
				utils.ResponseInternalError(w, "Something went wrong")
				return
			}
			if session == nil {
				utils.ResponseUnauthorized(w, "Session expired or invalid")
				return
			}

			profile, err := profileRepo.FindByID(r.Context(), session.UserID)
			if err != nil {
				log.Error("profile lookup failed", zap.Error(err))
				utils.ResponseInternalError(w, "Something went wrong")
				return
			}
			if profile == nil || !profile.IsActive {
				utils.ResponseUnauthorized(w, "Account is not active")
				return
			}

			ctx := utils.SetUserContext(r.Context(), profile.ID, string(profile.Role))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
