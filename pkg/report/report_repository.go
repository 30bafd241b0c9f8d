package report

import (
	"context"

	"FoodBridge-Backend/entities"

	"gorm.io/gorm"
)

type (
	ReportRepository interface {
		CreateReport(ctx context.Context, report *entities.Report) error
		GetReportByID(ctx context.Context, id string) (*entities.Report, error)
		GetReports(ctx context.Context, status string) ([]*entities.Report, error)
		UpdateReport(ctx context.Context, report *entities.Report) error
	}

	reportRepository struct {
		db *gorm.DB
	}
)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CreateReport(ctx context.Context, report *entities.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) GetReportByID(ctx context.Context, id string) (*entities.Report, error) {
	var report entities.Report
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) GetReports(ctx context.Context, status string) ([]*entities.Report, error) {
	var reports []*entities.Report
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) UpdateReport(ctx context.Context, report *entities.Report) error {
	return r.db.WithContext(ctx).Save(report).Error
}
