package report

import (
	"context"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"

	"github.com/google/uuid"
)

type (
	ReportService interface {
		CreateReport(ctx context.Context, req domain.CreateReportRequest, reporterID string) (domain.ReportResponse, error)
	}

	reportService struct {
		reportRepository ReportRepository
	}
)

func NewReportService(reportRepository ReportRepository) ReportService {
	return &reportService{reportRepository: reportRepository}
}

func (s *reportService) CreateReport(ctx context.Context, req domain.CreateReportRequest, reporterID string) (domain.ReportResponse, error) {
	if req.ReportedUserID == "" && req.DonationID == "" {
		return domain.ReportResponse{}, domain.ErrReportTargetMissing
	}

	reporterUUID, err := uuid.Parse(reporterID)
	if err != nil {
		return domain.ReportResponse{}, domain.ErrParseUUID
	}

	report := &entities.Report{
		ID:         uuid.New(),
		ReporterID: reporterUUID,
		ReportType: req.ReportType,
		Reason:     req.Reason,
		Status:     domain.ReportStatusPending,
	}

	if req.ReportedUserID != "" {
		reportedUUID, err := uuid.Parse(req.ReportedUserID)
		if err != nil {
			return domain.ReportResponse{}, domain.ErrParseUUID
		}
		report.ReportedUserID = &reportedUUID
	}
	if req.DonationID != "" {
		donationUUID, err := uuid.Parse(req.DonationID)
		if err != nil {
			return domain.ReportResponse{}, domain.ErrParseUUID
		}
		report.DonationID = &donationUUID
	}

	if err := s.reportRepository.CreateReport(ctx, report); err != nil {
		return domain.ReportResponse{}, err
	}

	return ToResponse(report), nil
}

func ToResponse(report *entities.Report) domain.ReportResponse {
	res := domain.ReportResponse{
		ID:         report.ID.String(),
		ReporterID: report.ReporterID.String(),
		ReportType: report.ReportType,
		Reason:     report.Reason,
		Status:     report.Status,
		ResolvedAt: report.ResolvedAt,
		CreatedAt:  report.CreatedAt,
	}
	if report.ReportedUserID != nil {
		res.ReportedUserID = report.ReportedUserID.String()
	}
	if report.DonationID != nil {
		res.DonationID = report.DonationID.String()
	}
	return res
}
