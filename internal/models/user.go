package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserName     string     `json:"userName" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	FirstName    string     `json:"firstName" gorm:"not null"`
	LastName     string     `json:"lastName" gorm:"not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	MobileNumber string     `json:"mobileNumber,omitempty"`
	Language     string     `json:"language"`
	Culture      string     `json:"culture"`
	DateCreated  time.Time  `json:"dateCreated" gorm:"autoCreateTime"`
	DateModified *time.Time `json:"dateModified,omitempty"` // nil until the first update
	Clients      []Client   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"` // one-to-many relation
}
