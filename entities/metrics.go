package entities

import (
	"time"

	"github.com/google/uuid"
)

type DailyMetrics struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Date                 time.Time `gorm:"type:date;uniqueIndex" json:"date"`
	FoodSavedKg          float64   `json:"food_saved_kg"`
	PeopleServed         int       `json:"people_served"`
	EmissionsPreventedKg float64   `json:"emissions_prevented_kg"`

	Timestamp
}
