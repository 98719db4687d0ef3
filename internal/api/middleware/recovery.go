package middleware

import (
	"net/http"

	"github.com/mpetrovic-dev/usermgmt/internal/utils"
	"go.uber.org/zap"
)

// Recovery is the last line of defense: any panic escaping the handler chain
// becomes a generic 500 with no internal detail leaked to the caller.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Stack("stack"),
					)
					utils.ErrorResponse(w, http.StatusInternalServerError, "An unexpected error occurred.")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
