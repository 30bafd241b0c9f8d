package donation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"FoodBridge-Backend/internal/events"
	"FoodBridge-Backend/internal/utils/geopoint"
	"FoodBridge-Backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rough impact factors per kg of food kept out of the bin.
const (
	mealsPerKg       = 0.8
	emissionsKgPerKg = 2.5
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.DonationRequest, donorID string) (*domain.DonationResponse, error)
		UpdateDonation(ctx context.Context, id string, req domain.DonationRequest, callerID string) error
		DeleteDonation(ctx context.Context, id string, callerID string) error
		AcceptDonation(ctx context.Context, id string, receiverID string) error
		AdvanceDonationStatus(ctx context.Context, id string, status string) error
		GetDonationByID(ctx context.Context, id string) (*domain.DonationResponse, error)
		GetDonorDonations(ctx context.Context, donorID string, page, limit int) ([]*domain.DonationResponse, int64, error)
		GetOpenDonations(ctx context.Context, req domain.OpenDonationsRequest, page, limit int) ([]*domain.DonationResponse, int64, error)
		GetMapMarkers(ctx context.Context) ([]*domain.DonationMarker, error)
	}

	donationService struct {
		donationRepository DonationRepository
		s3                 storage.AwsS3
		broker             *events.Broker
	}
)

func NewDonationService(donationRepository DonationRepository, s3 storage.AwsS3, broker *events.Broker) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		s3:                 s3,
		broker:             broker,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.DonationRequest, donorID string) (*domain.DonationResponse, error) {
	validated, err := ValidateForSubmit(req)
	if err != nil {
		return nil, err
	}

	donorUUID, err := uuid.Parse(donorID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	donationID := uuid.New()

	imageURL := validated.ImageURL
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("donation-%s", donationID.String()),
			req.Image,
			"donations",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		imageURL = objectKey
	}

	donation := &entities.Donation{
		ID:              donationID,
		DonorID:         donorUUID,
		DonorType:       validated.DonorType,
		FoodType:        validated.FoodType,
		Category:        validated.Category,
		Quantity:        validated.Quantity,
		Description:     validated.Description,
		Items:           validated.Items,
		PickupAddress:   validated.PickupAddress,
		Location:        validated.Location,
		PickupTimeStart: validated.PickupTimeStart,
		PickupTimeEnd:   validated.PickupTimeEnd,
		ContactPerson:   validated.ContactPerson,
		ContactNumber:   validated.ContactNumber,
		ImageURL:        imageURL,
		ExpiryTime:      validated.ExpiryTime,
		Consent:         validated.Consent,
		Status:          domain.DonationStatusPending,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	s.broker.Publish(events.DonationEvent{
		Type:       events.EventInsert,
		DonationID: donation.ID.String(),
		Status:     donation.Status,
	})

	return s.toResponse(donation), nil
}

func (s *donationService) UpdateDonation(ctx context.Context, id string, req domain.DonationRequest, callerID string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	if donation.DonorID.String() != callerID {
		return domain.ErrNotDonationOwner
	}
	if donation.Status != domain.DonationStatusPending {
		return domain.ErrDonationNotEditable
	}

	validated, err := ValidateForSubmit(req)
	if err != nil {
		return err
	}

	imageURL := validated.ImageURL
	if imageURL == "" {
		imageURL = donation.ImageURL
	}
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("donation-%s", donation.ID.String()),
			req.Image,
			"donations",
			storage.AllowImage...,
		)
		if err != nil {
			return err
		}
		imageURL = objectKey
	}

	updates := map[string]interface{}{
		"donor_type":        validated.DonorType,
		"food_type":         validated.FoodType,
		"category":          validated.Category,
		"quantity":          validated.Quantity,
		"description":       validated.Description,
		"items":             validated.Items,
		"pickup_address":    validated.PickupAddress,
		"location":          validated.Location,
		"pickup_time_start": validated.PickupTimeStart,
		"pickup_time_end":   validated.PickupTimeEnd,
		"contact_person":    validated.ContactPerson,
		"contact_number":    validated.ContactNumber,
		"image_url":         imageURL,
		"expiry_time":       validated.ExpiryTime,
		"consent":           validated.Consent,
	}

	// conditioned on status so a concurrent accept cannot be overwritten
	rows, err := s.donationRepository.UpdateDonationIfPending(ctx, id, updates)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrDonationNotEditable
	}

	s.broker.Publish(events.DonationEvent{
		Type:       events.EventUpdate,
		DonationID: id,
		Status:     domain.DonationStatusPending,
	})
	return nil
}

func (s *donationService) DeleteDonation(ctx context.Context, id string, callerID string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	if donation.DonorID.String() != callerID {
		return domain.ErrNotDonationOwner
	}
	if donation.Status != domain.DonationStatusPending {
		return domain.ErrDonationNotEditable
	}

	rows, err := s.donationRepository.DeleteDonationIfPending(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrDonationNotEditable
	}

	// best-effort: an orphaned object is logged, never a failed delete
	if key := donation.ImageURL; key != "" && !strings.HasPrefix(key, "http") {
		if err := s.s3.DeleteFile(key); err != nil {
			log.Warnf("failed to release image %s for deleted donation %s: %v", key, id, err)
		}
	}

	s.broker.Publish(events.DonationEvent{
		Type:       events.EventDelete,
		DonationID: id,
	})
	return nil
}

func (s *donationService) AcceptDonation(ctx context.Context, id string, receiverID string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	if donation.Status != domain.DonationStatusPending {
		return domain.ErrDonationAlreadyTaken
	}

	// first committed write wins; losers see zero rows touched
	rows, err := s.donationRepository.UpdateDonationStatusIf(ctx, id, domain.DonationStatusPending, domain.DonationStatusAccepted)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrDonationAlreadyTaken
	}

	s.broker.Publish(events.DonationEvent{
		Type:       events.EventUpdate,
		DonationID: id,
		Status:     domain.DonationStatusAccepted,
	})
	return nil
}

func (s *donationService) AdvanceDonationStatus(ctx context.Context, id string, status string) error {
	var from string
	switch status {
	case domain.DonationStatusPicked:
		from = domain.DonationStatusAccepted
	case domain.DonationStatusVerified:
		from = domain.DonationStatusPicked
	default:
		return domain.ErrInvalidStatusChange
	}

	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	rows, err := s.donationRepository.UpdateDonationStatusIf(ctx, id, from, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInvalidStatusChange
	}

	if status == domain.DonationStatusVerified {
		today := time.Now().Truncate(24 * time.Hour)
		foodKg := donation.Quantity
		people := int(foodKg * mealsPerKg)
		if err := s.donationRepository.AddDailyImpact(ctx, today, foodKg, people, foodKg*emissionsKgPerKg); err != nil {
			log.Warnf("failed to record daily impact for donation %s: %v", id, err)
		}
	}

	s.broker.Publish(events.DonationEvent{
		Type:       events.EventUpdate,
		DonationID: id,
		Status:     status,
	})
	return nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string) (*domain.DonationResponse, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	return s.toResponse(donation), nil
}

func (s *donationService) GetDonorDonations(ctx context.Context, donorID string, page, limit int) ([]*domain.DonationResponse, int64, error) {
	donations, count, err := s.donationRepository.GetDonorDonations(ctx, donorID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.DonationResponse, 0, len(donations))
	for _, d := range donations {
		result = append(result, s.toResponse(d))
	}
	return result, count, nil
}

func (s *donationService) GetOpenDonations(ctx context.Context, req domain.OpenDonationsRequest, page, limit int) ([]*domain.DonationResponse, int64, error) {
	donations, count, err := s.donationRepository.GetOpenDonations(ctx, req, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.DonationResponse, 0, len(donations))
	for _, d := range donations {
		result = append(result, s.toResponse(d))
	}
	return result, count, nil
}

func (s *donationService) GetMapMarkers(ctx context.Context) ([]*domain.DonationMarker, error) {
	donations, _, err := s.donationRepository.GetOpenDonations(ctx, domain.OpenDonationsRequest{}, 1, 500)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	markers := make([]*domain.DonationMarker, 0, len(donations))
	for _, d := range donations {
		point, err := geopoint.Parse(d.Location)
		if err != nil {
			// malformed location: skip the record, never fail the request
			log.Warnf("skipping donation %s with malformed location %q", d.ID, d.Location)
			continue
		}
		if point.Lat == 0 && point.Lng == 0 {
			// origin sentinel means "no coordinates", nothing to plot
			continue
		}

		markers = append(markers, &domain.DonationMarker{
			ID:            d.ID.String(),
			Latitude:      point.Lat,
			Longitude:     point.Lng,
			Items:         d.Items,
			FoodType:      d.FoodType,
			Quantity:      d.Quantity,
			PickupAddress: d.PickupAddress,
			ImageURL:      s.resolveImageURL(d.ImageURL),
			ExpiryTime:    d.ExpiryTime,
			Urgency:       string(ComputeUrgency(d.ExpiryTime, now)),
		})
	}
	return markers, nil
}

// resolveImageURL passes absolute URLs through and resolves storage keys to
// public links; empty references fall back to the placeholder image.
func (s *donationService) resolveImageURL(imageURL string) string {
	if imageURL == "" {
		return domain.DefaultDonationImage
	}
	if strings.HasPrefix(imageURL, "http") {
		return imageURL
	}
	return s.s3.GetPublicLinkKey(imageURL)
}

func (s *donationService) toResponse(d *entities.Donation) *domain.DonationResponse {
	res := &domain.DonationResponse{
		ID:              d.ID.String(),
		DonorID:         d.DonorID.String(),
		DonorType:       d.DonorType,
		FoodType:        d.FoodType,
		Category:        d.Category,
		Quantity:        d.Quantity,
		Description:     d.Description,
		Items:           d.Items,
		PickupAddress:   d.PickupAddress,
		Location:        d.Location,
		PickupTimeStart: d.PickupTimeStart,
		PickupTimeEnd:   d.PickupTimeEnd,
		ContactPerson:   d.ContactPerson,
		ContactNumber:   d.ContactNumber,
		ImageURL:        s.resolveImageURL(d.ImageURL),
		ExpiryTime:      d.ExpiryTime,
		Urgency:         string(ComputeUrgency(d.ExpiryTime, time.Now())),
		Status:          d.Status,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
	if d.Donor != nil {
		res.DonorName = d.Donor.Name
		res.DonorOrg = d.Donor.Organization
	}
	return res
}
