// Package auth holds the credential primitives: password hashing and
// API-key issuance.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes; truncating explicitly keeps
// hashing and verification consistent for arbitrarily long inputs.
const maxPasswordBytes = 72

// PasswordHasher produces and verifies salted bcrypt hashes. Each hash
// embeds its cost and a fresh random salt, so old hashes stay verifiable
// after the configured cost changes.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// HashPassword hashes the given plaintext. Any input string is accepted,
// including the empty string.
func (h *PasswordHasher) HashPassword(password string) (string, error) {
	plain := []byte(password)
	if len(plain) > maxPasswordBytes {
		plain = plain[:maxPasswordBytes]
	}
	hash, err := bcrypt.GenerateFromPassword(plain, h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash. Malformed hashes
// and mismatches both return false; it never returns an error.
func (h *PasswordHasher) VerifyPassword(password, hash string) bool {
	plain := []byte(password)
	if len(plain) > maxPasswordBytes {
		plain = plain[:maxPasswordBytes]
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), plain) == nil
}
