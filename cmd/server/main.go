package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/mpetrovic-dev/usermgmt/internal/api"
	"github.com/mpetrovic-dev/usermgmt/internal/auth"
	"github.com/mpetrovic-dev/usermgmt/internal/config"
	"github.com/mpetrovic-dev/usermgmt/internal/repositories"
	"github.com/mpetrovic-dev/usermgmt/internal/service"
	"go.uber.org/zap"
)

// @title User Management API
// @version 1.0
// @description User accounts with API-key gated access.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Could not create logger: %v", err)
	}
	defer logger.Sync()

	db, err := repositories.Connect(cfg.DBURL)
	if err != nil {
		logger.Fatal("database setup failed", zap.Error(err))
	}
	logger.Info("successfully connected to database")

	store := repositories.NewGormStore(db)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	issuer := auth.NewAPIKeyIssuer()
	accounts := service.NewAccountService(store, hasher, issuer, logger)

	handler := api.SetupRouter(accounts, store.Clients(), cfg.CorsConfig, logger)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: handler,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.Port))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
