package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email        string     `gorm:"uniqueIndex" json:"email"`
	Password     string     `json:"-"`
	Name         string     `json:"name"`
	Role         string     `json:"role"` // donor, receiver, admin
	Phone        string     `json:"phone,omitempty"`
	Organization string     `json:"organization,omitempty"`
	AvatarURL    string     `json:"avatar_url,omitempty"`
	IsVerified   bool       `json:"is_verified"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
	VerifiedBy   *uuid.UUID `json:"verified_by,omitempty"`
	IsFlagged    bool       `json:"is_flagged"`

	Donations []*Donation `gorm:"foreignKey:DonorID"`
	Timestamp
}
