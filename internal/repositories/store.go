// Package repositories defines the storage contracts consumed by the service
// layer and their GORM-backed implementations.
package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/mpetrovic-dev/usermgmt/internal/models"
)

// UserRepository is the user store. Lookups return nil (not an error) when no
// record matches; uuid.Nil as excludeID means no exclusion.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByUserName(ctx context.Context, userName string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, user *models.User) error
	UserNameExists(ctx context.Context, userName string, excludeID uuid.UUID) (bool, error)
	EmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
}

// ClientRepository is the API-key grant store.
type ClientRepository interface {
	Insert(ctx context.Context, client *models.Client) error
	FindByAPIKey(ctx context.Context, apiKey string) (*models.Client, error)
	FindAPIKeyByUserID(ctx context.Context, userID uuid.UUID) (string, error)
}

// Store bundles the repositories with a transactional scope. Transact runs fn
// against a Store whose repositories share one transaction; returning an error
// rolls everything back.
type Store interface {
	Users() UserRepository
	Clients() ClientRepository
	Transact(ctx context.Context, fn func(Store) error) error
}
