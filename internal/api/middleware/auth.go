package middleware

import (
	"context"
	"net/http"

	"github.com/mpetrovic-dev/usermgmt/internal/models"
	"github.com/mpetrovic-dev/usermgmt/internal/repositories"
	"github.com/mpetrovic-dev/usermgmt/internal/utils"
	"go.uber.org/zap"
)

// APIKeyHeader carries the caller's bearer credential on protected routes.
const APIKeyHeader = "X-API-Key"

const clientKey contextKey = "client"

// ClientFromContext returns the client resolved by APIKeyAuth, if any.
func ClientFromContext(ctx context.Context) (*models.Client, bool) {
	client, ok := ctx.Value(clientKey).(*models.Client)
	return client, ok
}

// APIKeyAuth rejects requests without a valid API key and attaches the
// resolved client to the request context. Routes registered outside this
// middleware (login, health, docs) bypass it entirely.
func APIKeyAuth(clients repositories.ClientRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get(APIKeyHeader)
			if key == "" {
				logger.Warn("missing api key",
					zap.String("path", r.URL.Path),
					zap.String("ip", clientIP(r)),
				)
				utils.ErrorResponse(w, http.StatusUnauthorized, "API Key is missing")
				return
			}

			client, err := clients.FindByAPIKey(r.Context(), key)
			if err != nil {
				logger.Error("api key lookup failed", zap.Error(err))
				utils.ErrorResponse(w, http.StatusInternalServerError, "An unexpected error occurred.")
				return
			}
			if client == nil {
				logger.Warn("invalid api key",
					zap.String("api_key", maskAPIKey(key)),
					zap.String("ip", clientIP(r)),
				)
				utils.ErrorResponse(w, http.StatusUnauthorized, "Invalid API Key")
				return
			}

			if h := holderFromContext(r.Context()); h != nil {
				h.label = client.ID.String()
			}

			ctx := context.WithValue(r.Context(), clientKey, client)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func maskAPIKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "****"
}
