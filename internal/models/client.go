package models

import (
	"time"

	"github.com/google/uuid"
)

// Client is the API-key grant issued to a user at registration.
// The key is a permanent bearer credential; there is no rotation.
type Client struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"` // foreign key
	APIKey    string    `json:"-" gorm:"uniqueIndex;not null"`          // secure random token
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
