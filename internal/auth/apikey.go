package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mpetrovic-dev/usermgmt/internal/models"
	"github.com/mpetrovic-dev/usermgmt/internal/repositories"
	"github.com/mpetrovic-dev/usermgmt/internal/utils"
)

// 256-bit keys
const apiKeyBytes = 32

// APIKeyIssuer mints and looks up the API key bound to a user. The client
// repository is passed per call so issuance can join the caller's
// transaction.
type APIKeyIssuer struct{}

func NewAPIKeyIssuer() *APIKeyIssuer {
	return &APIKeyIssuer{}
}

// Issue generates a fresh opaque key for the user and persists the grant.
func (i *APIKeyIssuer) Issue(ctx context.Context, clients repositories.ClientRepository, userID uuid.UUID) (*models.Client, error) {
	key, err := utils.GenerateSecureToken(apiKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate api key: %w", err)
	}

	client := &models.Client{
		ID:     uuid.New(),
		UserID: userID,
		APIKey: key,
	}
	if err := clients.Insert(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to store api key: %w", err)
	}
	return client, nil
}

// Lookup returns the key bound to the user, or "" when none exists.
func (i *APIKeyIssuer) Lookup(ctx context.Context, clients repositories.ClientRepository, userID uuid.UUID) (string, error) {
	return clients.FindAPIKeyByUserID(ctx, userID)
}
