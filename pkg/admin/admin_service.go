package admin

import (
	"context"
	"errors"
	"time"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"FoodBridge-Backend/pkg/report"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AdminService interface {
		GetTodayMetrics(ctx context.Context) (domain.DailyMetricsResponse, error)
		GetReports(ctx context.Context, status string) ([]domain.ReportResponse, error)
		UpdateReportStatus(ctx context.Context, id string, req domain.UpdateReportRequest, adminID string) error
		RegisterOrganization(ctx context.Context, req domain.CreateOrganizationRequest) (domain.OrganizationResponse, error)
		GetOrganizations(ctx context.Context) ([]domain.OrganizationResponse, error)
		UpdateOrganizationStatus(ctx context.Context, id string, req domain.UpdateOrganizationRequest, adminID string) error
		VerifyUser(ctx context.Context, userID string, adminID string) error
		FlagUser(ctx context.Context, userID string) error
	}

	adminService struct {
		adminRepository  AdminRepository
		reportRepository report.ReportRepository
	}
)

func NewAdminService(adminRepository AdminRepository, reportRepository report.ReportRepository) AdminService {
	return &adminService{
		adminRepository:  adminRepository,
		reportRepository: reportRepository,
	}
}

func (s *adminService) GetTodayMetrics(ctx context.Context) (domain.DailyMetricsResponse, error) {
	today := time.Now().Truncate(24 * time.Hour)

	metrics, err := s.adminRepository.GetMetricsByDate(ctx, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// no activity recorded yet today; return a zero-valued day
			return domain.DailyMetricsResponse{Date: today.Format("2006-01-02")}, nil
		}
		return domain.DailyMetricsResponse{}, err
	}

	return domain.DailyMetricsResponse{
		Date:                 metrics.Date.Format("2006-01-02"),
		FoodSavedKg:          metrics.FoodSavedKg,
		PeopleServed:         metrics.PeopleServed,
		EmissionsPreventedKg: metrics.EmissionsPreventedKg,
	}, nil
}

func (s *adminService) GetReports(ctx context.Context, status string) ([]domain.ReportResponse, error) {
	reports, err := s.reportRepository.GetReports(ctx, status)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ReportResponse, 0, len(reports))
	for _, r := range reports {
		result = append(result, report.ToResponse(r))
	}
	return result, nil
}

func (s *adminService) UpdateReportStatus(ctx context.Context, id string, req domain.UpdateReportRequest, adminID string) error {
	rep, err := s.reportRepository.GetReportByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReportNotFound
		}
		return err
	}

	if rep.Status != domain.ReportStatusPending {
		return domain.ErrReportNotPending
	}

	switch req.Action {
	case "resolve":
		rep.Status = domain.ReportStatusResolved
	case "dismiss":
		rep.Status = domain.ReportStatusDismissed
	default:
		return domain.ErrInvalidReportAction
	}

	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return domain.ErrParseUUID
	}
	now := time.Now()
	rep.ResolvedAt = &now
	rep.ResolvedBy = &adminUUID

	return s.reportRepository.UpdateReport(ctx, rep)
}

func (s *adminService) RegisterOrganization(ctx context.Context, req domain.CreateOrganizationRequest) (domain.OrganizationResponse, error) {
	org := &entities.Organization{
		ID:            uuid.New(),
		Name:          req.Name,
		Type:          req.Type,
		Status:        domain.OrganizationStatusPending,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
	}

	if err := s.adminRepository.CreateOrganization(ctx, org); err != nil {
		return domain.OrganizationResponse{}, err
	}

	return toOrganizationResponse(org), nil
}

func (s *adminService) GetOrganizations(ctx context.Context) ([]domain.OrganizationResponse, error) {
	orgs, err := s.adminRepository.GetOrganizations(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		result = append(result, toOrganizationResponse(org))
	}
	return result, nil
}

func (s *adminService) UpdateOrganizationStatus(ctx context.Context, id string, req domain.UpdateOrganizationRequest, adminID string) error {
	org, err := s.adminRepository.GetOrganizationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrganizationNotFound
		}
		return err
	}

	if org.Status != domain.OrganizationStatusPending {
		return domain.ErrOrganizationNotPending
	}

	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return domain.ErrParseUUID
	}

	now := time.Now()
	org.Status = req.Status
	org.ApprovedAt = &now
	org.ApprovedBy = &adminUUID

	return s.adminRepository.UpdateOrganization(ctx, org)
}

func (s *adminService) VerifyUser(ctx context.Context, userID string, adminID string) error {
	user, err := s.adminRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return domain.ErrParseUUID
	}

	now := time.Now()
	user.IsVerified = true
	user.VerifiedAt = &now
	user.VerifiedBy = &adminUUID

	return s.adminRepository.UpdateUser(ctx, user)
}

func (s *adminService) FlagUser(ctx context.Context, userID string) error {
	user, err := s.adminRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.IsFlagged = true
	return s.adminRepository.UpdateUser(ctx, user)
}

func toOrganizationResponse(org *entities.Organization) domain.OrganizationResponse {
	return domain.OrganizationResponse{
		ID:            org.ID.String(),
		Name:          org.Name,
		Type:          org.Type,
		Status:        org.Status,
		ContactPerson: org.ContactPerson,
		Email:         org.Email,
		ApprovedAt:    org.ApprovedAt,
		CreatedAt:     org.CreatedAt,
	}
}
