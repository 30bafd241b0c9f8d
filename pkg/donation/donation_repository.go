package donation

import (
	"context"
	"time"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		GetDonorDonations(ctx context.Context, donorID string, page, limit int) ([]*entities.Donation, int64, error)
		GetOpenDonations(ctx context.Context, filter domain.OpenDonationsRequest, page, limit int) ([]*entities.Donation, int64, error)
		UpdateDonationIfPending(ctx context.Context, id string, updates map[string]interface{}) (int64, error)
		DeleteDonationIfPending(ctx context.Context, id string) (int64, error)
		UpdateDonationStatusIf(ctx context.Context, id string, from string, to string) (int64, error)
		AddDailyImpact(ctx context.Context, date time.Time, foodKg float64, people int, emissionsKg float64) error
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) GetDonorDonations(ctx context.Context, donorID string, page, limit int) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("donor_id = ?", donorID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}

func (r *donationRepository) GetOpenDonations(ctx context.Context, filter domain.OpenDonationsRequest, page, limit int) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("status = ?", domain.DonationStatusPending)

	if filter.DonorType != "" {
		query = query.Where("donor_type = ?", filter.DonorType)
	}
	if filter.FoodType != "" {
		query = query.Where("food_type = ?", filter.FoodType)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"items ILIKE ? OR description ILIKE ? OR pickup_address ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Donor").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}

// UpdateDonationIfPending applies updates only while the record is still
// pending, so an accept that lands first also blocks a racing edit.
func (r *donationRepository) UpdateDonationIfPending(ctx context.Context, id string, updates map[string]interface{}) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ? AND status = ?", id, domain.DonationStatusPending).
		Updates(updates)
	return tx.RowsAffected, tx.Error
}

func (r *donationRepository) DeleteDonationIfPending(ctx context.Context, id string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, domain.DonationStatusPending).
		Delete(&entities.Donation{})
	return tx.RowsAffected, tx.Error
}

// UpdateDonationStatusIf is the conditional write behind every status
// transition: it succeeds only when the observed prior status still matches.
func (r *donationRepository) UpdateDonationStatusIf(ctx context.Context, id string, from string, to string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return tx.RowsAffected, tx.Error
}

func (r *donationRepository) AddDailyImpact(ctx context.Context, date time.Time, foodKg float64, people int, emissionsKg float64) error {
	metrics := &entities.DailyMetrics{
		Date:                 date,
		FoodSavedKg:          foodKg,
		PeopleServed:         people,
		EmissionsPreventedKg: emissionsKg,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"food_saved_kg":          gorm.Expr("daily_metrics.food_saved_kg + ?", foodKg),
				"people_served":          gorm.Expr("daily_metrics.people_served + ?", people),
				"emissions_prevented_kg": gorm.Expr("daily_metrics.emissions_prevented_kg + ?", emissionsKg),
			}),
		}).
		Create(metrics).Error
}
