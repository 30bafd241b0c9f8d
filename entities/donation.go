package entities

import (
	"time"

	"github.com/google/uuid"
)

type Donation struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonorID         uuid.UUID `json:"donor_id"`
	DonorType       string    `json:"donor_type"` // individual, restaurant, caterer, canteen
	FoodType        string    `json:"food_type"`  // veg, non-veg
	Category        string    `json:"category"`   // perishable, non-perishable
	Quantity        float64   `json:"quantity"`
	Description     string    `json:"description,omitempty"`
	Items           string    `json:"items"`
	PickupAddress   string    `json:"pickup_address"`
	Location        string    `json:"location"` // "(longitude,latitude)" text, "(0,0)" when unknown
	PickupTimeStart string    `json:"pickup_time_start"`
	PickupTimeEnd   string    `json:"pickup_time_end"`
	ContactPerson   string    `json:"contact_person,omitempty"`
	ContactNumber   string    `json:"contact_number,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"` // absolute URL or storage object key
	ExpiryTime      time.Time `json:"expiry_time"`
	Consent         bool      `json:"consent"`
	Status          string    `json:"status"` // pending, accepted, picked, verified

	Donor *User `gorm:"foreignKey:DonorID"`
	Timestamp
}
