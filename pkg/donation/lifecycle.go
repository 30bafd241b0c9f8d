package donation

import (
	"time"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/internal/utils/geopoint"
)

// Urgency buckets drive display coloring and sorting only.
type Urgency string

const (
	UrgencyExpired  Urgency = "expired"
	UrgencyImminent Urgency = "imminent"
	UrgencyNormal   Urgency = "normal"
)

const imminentWindow = time.Hour

// ComputeUrgency buckets a donation by how close its expiry is. Expiry is
// advisory: it never changes the donation status on its own.
func ComputeUrgency(expiry time.Time, now time.Time) Urgency {
	remaining := expiry.Sub(now)
	switch {
	case remaining < 0:
		return UrgencyExpired
	case remaining < imminentWindow:
		return UrgencyImminent
	default:
		return UrgencyNormal
	}
}

// ValidatedDonation is a draft that passed submission rules, with the
// location already normalized to its persisted text form.
type ValidatedDonation struct {
	DonorType       string
	FoodType        string
	Category        string
	Quantity        float64
	Description     string
	Items           string
	PickupAddress   string
	Location        string
	PickupTimeStart string
	PickupTimeEnd   string
	ContactPerson   string
	ContactNumber   string
	ImageURL        string
	ExpiryTime      time.Time
	Consent         bool
}

// expiry arrives from a datetime-local form field or as RFC 3339
var expiryLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04"}

// ValidateForSubmit applies the submission rules: consent must be given, the
// pickup must be identifiable by address or coordinates, and quantity must
// not be negative. Missing coordinates alone never fail a submission; the
// location falls back to the origin sentinel when an address is present.
func ValidateForSubmit(req domain.DonationRequest) (*ValidatedDonation, error) {
	if !req.Consent {
		return nil, domain.ErrConsentRequired
	}
	if req.Quantity < 0 {
		return nil, domain.ErrNegativeQuantity
	}

	hasCoordinates := req.Latitude != nil && req.Longitude != nil
	if req.PickupAddress == "" && !hasCoordinates {
		return nil, domain.ErrNoPickupLocation
	}

	location := geopoint.Origin
	if hasCoordinates {
		location = geopoint.Encode(geopoint.Point{Lat: *req.Latitude, Lng: *req.Longitude})
	}

	var expiry time.Time
	var err error
	for _, layout := range expiryLayouts {
		expiry, err = time.Parse(layout, req.ExpiryTime)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, domain.ErrInvalidExpiryTime
	}

	return &ValidatedDonation{
		DonorType:       req.DonorType,
		FoodType:        req.FoodType,
		Category:        req.Category,
		Quantity:        req.Quantity,
		Description:     req.Description,
		Items:           req.Items,
		PickupAddress:   req.PickupAddress,
		Location:        location,
		PickupTimeStart: req.PickupTimeStart,
		PickupTimeEnd:   req.PickupTimeEnd,
		ContactPerson:   req.ContactPerson,
		ContactNumber:   req.ContactNumber,
		ImageURL:        req.ImageURL,
		ExpiryTime:      expiry,
		Consent:         req.Consent,
	}, nil
}
