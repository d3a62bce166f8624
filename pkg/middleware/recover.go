package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/joshijay655/justdostuff/pkg/utils"

	"go.uber.org/zap"
)

// Recover converts panics into 500 responses instead of dropping the connection.
func Recover(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path),
						zap.ByteString("stack", debug.Stack()),
					)
					utils.ResponseInternalError(w, "Something went wrong")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
