package domain

import (
	"errors"
	"time"
)

const (
	ReportStatusPending   = "pending"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

var (
	MessageSuccessCreateReport = "report submitted successfully"
	MessageFailedCreateReport  = "failed to submit report"

	ErrReportNotFound      = errors.New("report not found")
	ErrReportTargetMissing = errors.New("report must reference a user or a donation")
	ErrReportNotPending    = errors.New("report has already been handled")
)

type (
	CreateReportRequest struct {
		ReportType     string `json:"report_type" validate:"required,oneof=user donation"`
		ReportedUserID string `json:"reported_user_id" validate:"omitempty,uuid"`
		DonationID     string `json:"donation_id" validate:"omitempty,uuid"`
		Reason         string `json:"reason" validate:"required"`
	}

	ReportResponse struct {
		ID             string     `json:"id"`
		ReporterID     string     `json:"reporter_id"`
		ReportedUserID string     `json:"reported_user_id,omitempty"`
		DonationID     string     `json:"donation_id,omitempty"`
		ReportType     string     `json:"report_type"`
		Reason         string     `json:"reason"`
		Status         string     `json:"status"`
		ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
		CreatedAt      time.Time  `json:"created_at"`
	}
)
