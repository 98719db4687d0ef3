package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// The service layer reports failures through this closed set of error kinds.
// Handlers map each kind to a status code exactly once; anything outside the
// set is treated as an internal error.

// ErrAuthenticationFailed covers both unknown usernames and wrong passwords
// so the response gives no signal usable for username enumeration.
var ErrAuthenticationFailed = errors.New("Invalid username or password.")

// ErrMissingAPIKey marks an account that exists without an API-key grant.
// This is an inconsistent-data state, not a client error.
var ErrMissingAPIKey = errors.New("User doesn't have an API key.")

type DuplicateUserNameError struct {
	UserName string
}

func (e *DuplicateUserNameError) Error() string {
	return fmt.Sprintf("The username '%s' is already registered.", e.UserName)
}

type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("The email '%s' is already registered.", e.Email)
}

type UserNotFoundError struct {
	ID uuid.UUID
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("User with id '%s' doesn't exist.", e.ID)
}
