// Package service implements the account lifecycle and authentication logic.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mpetrovic-dev/usermgmt/internal/auth"
	"github.com/mpetrovic-dev/usermgmt/internal/models"
	"github.com/mpetrovic-dev/usermgmt/internal/repositories"
	"go.uber.org/zap"
)

// AccountService orchestrates user accounts: registration, profile reads and
// writes, deletion, and credential authentication. Uniqueness pre-checks run
// before every mutating write; the database unique indexes remain the
// authoritative backstop for races between concurrent requests.
type AccountService struct {
	store  repositories.Store
	hasher *auth.PasswordHasher
	issuer *auth.APIKeyIssuer
	logger *zap.Logger
}

func NewAccountService(store repositories.Store, hasher *auth.PasswordHasher, issuer *auth.APIKeyIssuer, logger *zap.Logger) *AccountService {
	return &AccountService{
		store:  store,
		hasher: hasher,
		issuer: issuer,
		logger: logger,
	}
}

// AddUser registers a new account and issues its API key. The user and client
// rows are written in one transaction so an account can never exist without a
// key.
func (s *AccountService) AddUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	users := s.store.Users()

	taken, err := users.UserNameExists(ctx, req.UserName, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, &models.DuplicateUserNameError{UserName: req.UserName}
	}

	taken, err = users.EmailExists(ctx, req.Email, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, &models.DuplicateEmailError{Email: req.Email}
	}

	hash, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		UserName:     req.UserName,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Language:     req.Language,
		Culture:      req.Culture,
	}

	err = s.store.Transact(ctx, func(tx repositories.Store) error {
		if err := tx.Users().Insert(ctx, user); err != nil {
			return err
		}
		if _, err := s.issuer.Issue(ctx, tx.Clients(), user.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.UserName),
	)
	return user, nil
}

// GetUserByID fetches a single user.
func (s *AccountService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, &models.UserNotFoundError{ID: id}
	}
	return user, nil
}

// UpdateUser applies the mutable profile fields onto an existing account.
// UserName, PasswordHash and DateCreated are never touched. Both uniqueness
// checks exclude the user being updated, so re-submitting your own username
// or email is accepted.
func (s *AccountService) UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*models.User, error) {
	users := s.store.Users()

	taken, err := users.UserNameExists(ctx, req.UserName, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, &models.DuplicateUserNameError{UserName: req.UserName}
	}

	taken, err = users.EmailExists(ctx, req.Email, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, &models.DuplicateEmailError{Email: req.Email}
	}

	user, err := users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, &models.UserNotFoundError{ID: id}
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.MobileNumber = req.MobileNumber
	user.Language = req.Language
	user.Culture = req.Culture

	if err := users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", zap.String("user_id", user.ID.String()))
	return user, nil
}

// DeleteUser removes an account; the storage layer cascades to its API-key
// grant.
func (s *AccountService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	users := s.store.Users()

	user, err := users.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return &models.UserNotFoundError{ID: id}
	}

	if err := users.Delete(ctx, user); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted", zap.String("user_id", id.String()))
	return nil
}

// AuthenticateUser verifies credentials and returns the account's API key.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AccountService) AuthenticateUser(ctx context.Context, userName, password string) (string, error) {
	user, err := s.store.Users().FindByUserName(ctx, userName)
	if err != nil {
		return "", fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil || !s.hasher.VerifyPassword(password, user.PasswordHash) {
		s.logger.Warn("authentication failed", zap.String("username", userName))
		return "", models.ErrAuthenticationFailed
	}

	apiKey, err := s.issuer.Lookup(ctx, s.store.Clients(), user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch api key: %w", err)
	}
	if apiKey == "" {
		// Should not happen: keys are issued in the registration transaction.
		return "", models.ErrMissingAPIKey
	}

	return apiKey, nil
}
