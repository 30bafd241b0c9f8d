package entities

import (
	"time"

	"github.com/google/uuid"
)

type Report struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReporterID     uuid.UUID  `json:"reporter_id"`
	ReportedUserID *uuid.UUID `json:"reported_user_id,omitempty"`
	DonationID     *uuid.UUID `json:"donation_id,omitempty"`
	ReportType     string     `json:"report_type"` // user, donation
	Reason         string     `json:"reason"`
	Status         string     `json:"status"` // pending, resolved, dismissed
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy     *uuid.UUID `json:"resolved_by,omitempty"`

	Reporter     *User     `gorm:"foreignKey:ReporterID"`
	ReportedUser *User     `gorm:"foreignKey:ReportedUserID"`
	Donation     *Donation `gorm:"foreignKey:DonationID"`
	Timestamp
}
