package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	DonationStatusPending  = "pending"
	DonationStatusAccepted = "accepted"
	DonationStatusPicked   = "picked"
	DonationStatusVerified = "verified"
)

// Fallback image shown when a donation carries no picture of its own.
const DefaultDonationImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?auto=format&fit=crop&q=80&w=1000"

var (
	MessageSuccessCreateDonation  = "donation created successfully"
	MessageSuccessGetDonations    = "donations retrieved successfully"
	MessageSuccessUpdateDonation  = "donation updated successfully"
	MessageSuccessDeleteDonation  = "donation deleted successfully"
	MessageSuccessAcceptDonation  = "donation accepted successfully"
	MessageSuccessAdvanceDonation = "donation status updated successfully"
	MessageSuccessGetMapMarkers   = "map markers retrieved successfully"

	MessageFailedCreateDonation  = "failed to create donation"
	MessageFailedGetDonations    = "failed to retrieve donations"
	MessageFailedUpdateDonation  = "failed to update donation"
	MessageFailedDeleteDonation  = "failed to delete donation"
	MessageFailedAcceptDonation  = "failed to accept donation"
	MessageFailedAdvanceDonation = "failed to update donation status"
	MessageFailedGetMapMarkers   = "failed to retrieve map markers"

	ErrDonationNotFound     = errors.New("donation not found")
	ErrNotDonationOwner     = errors.New("caller does not own this donation")
	ErrDonationNotEditable  = errors.New("donation can only be changed while pending")
	ErrDonationAlreadyTaken = errors.New("donation has already been accepted")
	ErrConsentRequired      = errors.New("consent is required to submit a donation")
	ErrNoPickupLocation     = errors.New("either a pickup address or coordinates are required")
	ErrNegativeQuantity     = errors.New("quantity must not be negative")
	ErrInvalidExpiryTime    = errors.New("invalid expiry time")
	ErrInvalidStatusChange  = errors.New("invalid donation status change")
)

type (
	DonationRequest struct {
		DonorType       string                `json:"donor_type" form:"donor_type" validate:"required,oneof=individual restaurant caterer canteen"`
		FoodType        string                `json:"food_type" form:"food_type" validate:"required,oneof=veg non-veg"`
		Category        string                `json:"category" form:"category" validate:"required,oneof=perishable non-perishable"`
		Quantity        float64               `json:"quantity" form:"quantity"`
		Description     string                `json:"description" form:"description" validate:"omitempty"`
		Items           string                `json:"items" form:"items" validate:"required"`
		PickupAddress   string                `json:"pickup_address" form:"pickup_address" validate:"omitempty"`
		Latitude        *float64              `json:"latitude" form:"latitude"`
		Longitude       *float64              `json:"longitude" form:"longitude"`
		PickupTimeStart string                `json:"pickup_time_start" form:"pickup_time_start" validate:"required"`
		PickupTimeEnd   string                `json:"pickup_time_end" form:"pickup_time_end" validate:"required"`
		ContactPerson   string                `json:"contact_person" form:"contact_person" validate:"omitempty"`
		ContactNumber   string                `json:"contact_number" form:"contact_number" validate:"omitempty"`
		ImageURL        string                `json:"image_url" form:"image_url" validate:"omitempty"`
		Image           *multipart.FileHeader `json:"image" form:"image"`
		ExpiryTime      string                `json:"expiry_time" form:"expiry_time" validate:"required"`
		Consent         bool                  `json:"consent" form:"consent"`
	}

	DonationResponse struct {
		ID              string    `json:"id"`
		DonorID         string    `json:"donor_id"`
		DonorName       string    `json:"donor_name,omitempty"`
		DonorOrg        string    `json:"donor_organization,omitempty"`
		DonorType       string    `json:"donor_type"`
		FoodType        string    `json:"food_type"`
		Category        string    `json:"category"`
		Quantity        float64   `json:"quantity"`
		Description     string    `json:"description,omitempty"`
		Items           string    `json:"items"`
		PickupAddress   string    `json:"pickup_address"`
		Location        string    `json:"location"`
		PickupTimeStart string    `json:"pickup_time_start"`
		PickupTimeEnd   string    `json:"pickup_time_end"`
		ContactPerson   string    `json:"contact_person,omitempty"`
		ContactNumber   string    `json:"contact_number,omitempty"`
		ImageURL        string    `json:"image_url"`
		ExpiryTime      time.Time `json:"expiry_time"`
		Urgency         string    `json:"urgency"`
		Status          string    `json:"status"`
		CreatedAt       time.Time `json:"created_at"`
		UpdatedAt       time.Time `json:"updated_at"`
	}

	OpenDonationsRequest struct {
		Search    string `json:"search" validate:"omitempty"`
		DonorType string `json:"donor_type" validate:"omitempty,oneof=individual restaurant caterer canteen"`
		FoodType  string `json:"food_type" validate:"omitempty,oneof=veg non-veg"`
		Category  string `json:"category" validate:"omitempty,oneof=perishable non-perishable"`
	}

	AdvanceDonationStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=picked verified"`
	}

	DonationMarker struct {
		ID            string    `json:"id"`
		Latitude      float64   `json:"latitude"`
		Longitude     float64   `json:"longitude"`
		Items         string    `json:"items"`
		FoodType      string    `json:"food_type"`
		Quantity      float64   `json:"quantity"`
		PickupAddress string    `json:"pickup_address"`
		ImageURL      string    `json:"image_url"`
		ExpiryTime    time.Time `json:"expiry_time"`
		Urgency       string    `json:"urgency"`
	}
)
