package entities

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name          string     `json:"name"`
	Type          string     `json:"type"`   // ngo, volunteer
	Status        string     `json:"status"` // pending, approved, rejected
	ContactPerson string     `json:"contact_person"`
	Email         string     `json:"email"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	ApprovedBy    *uuid.UUID `json:"approved_by,omitempty"`

	Timestamp
}
