package admin

import (
	"context"
	"time"

	"FoodBridge-Backend/entities"

	"gorm.io/gorm"
)

type (
	AdminRepository interface {
		GetMetricsByDate(ctx context.Context, date time.Time) (*entities.DailyMetrics, error)
		CreateOrganization(ctx context.Context, org *entities.Organization) error
		GetOrganizationByID(ctx context.Context, id string) (*entities.Organization, error)
		GetOrganizations(ctx context.Context) ([]*entities.Organization, error)
		UpdateOrganization(ctx context.Context, org *entities.Organization) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetMetricsByDate(ctx context.Context, date time.Time) (*entities.DailyMetrics, error) {
	var metrics entities.DailyMetrics
	if err := r.db.WithContext(ctx).
		Where("date = ?", date.Format("2006-01-02")).
		First(&metrics).Error; err != nil {
		return nil, err
	}
	return &metrics, nil
}

func (r *adminRepository) CreateOrganization(ctx context.Context, org *entities.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *adminRepository) GetOrganizationByID(ctx context.Context, id string) (*entities.Organization, error) {
	var org entities.Organization
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *adminRepository) GetOrganizations(ctx context.Context) ([]*entities.Organization, error) {
	var orgs []*entities.Organization
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *adminRepository) UpdateOrganization(ctx context.Context, org *entities.Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

func (r *adminRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *adminRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
