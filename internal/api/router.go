package api

import (
	"fmt"
	"net/http"

	_ "github.com/mpetrovic-dev/usermgmt/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mpetrovic-dev/usermgmt/internal/api/handlers"
	"github.com/mpetrovic-dev/usermgmt/internal/api/middleware"
	"github.com/mpetrovic-dev/usermgmt/internal/repositories"
	"github.com/mpetrovic-dev/usermgmt/internal/service"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// SetupRouter wires the request pipeline: recovery, then the redaction
// logger, then cors, then for protected routes the API-key authenticator.
// Login, health and docs are exempt from the key check.
func SetupRouter(accounts *service.AccountService, clients repositories.ClientRepository, corsOptions cors.Options, logger *zap.Logger) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(corsOptions)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	clientHandler := handlers.NewClientHandler(accounts, logger)
	mainMux.HandleFunc("/clients", clientHandler.Login)

	// ---------- PROTECTED ROUTES ----------
	userHandler := handlers.NewUserHandler(accounts, logger)

	usersMux := http.NewServeMux()
	usersMux.HandleFunc("/users", userHandler.Create)
	usersMux.HandleFunc("/users/{id}", userHandler.ByID)

	protected := middleware.APIKeyAuth(clients, logger)(usersMux)
	mainMux.Handle("/users", protected)
	mainMux.Handle("/users/", protected)

	logger.Info("router initialized")

	handler := c.Handler(mainMux)
	handler = middleware.RequestLogger(logger)(handler)
	handler = middleware.Recovery(logger)(handler)
	return handler
}
