package domain

import (
	"errors"
	"time"
)

const (
	OrganizationStatusPending  = "pending"
	OrganizationStatusApproved = "approved"
	OrganizationStatusRejected = "rejected"
)

var (
	MessageSuccessGetMetrics         = "daily metrics retrieved successfully"
	MessageSuccessGetReports         = "reports retrieved successfully"
	MessageSuccessUpdateReport       = "report updated successfully"
	MessageSuccessGetOrganizations   = "organizations retrieved successfully"
	MessageSuccessCreateOrganization = "organization registered successfully"
	MessageSuccessUpdateOrganization = "organization updated successfully"
	MessageSuccessVerifyUser         = "user verified successfully"
	MessageSuccessFlagUser           = "user flagged successfully"

	MessageFailedGetMetrics         = "failed to retrieve daily metrics"
	MessageFailedGetReports         = "failed to retrieve reports"
	MessageFailedUpdateReport       = "failed to update report"
	MessageFailedGetOrganizations   = "failed to retrieve organizations"
	MessageFailedCreateOrganization = "failed to register organization"
	MessageFailedUpdateOrganization = "failed to update organization"
	MessageFailedVerifyUser         = "failed to verify user"
	MessageFailedFlagUser           = "failed to flag user"

	ErrOrganizationNotFound   = errors.New("organization not found")
	ErrOrganizationNotPending = errors.New("organization has already been reviewed")
	ErrInvalidReportAction    = errors.New("invalid report action")
)

type (
	DailyMetricsResponse struct {
		Date                 string  `json:"date"`
		FoodSavedKg          float64 `json:"food_saved_kg"`
		PeopleServed         int     `json:"people_served"`
		EmissionsPreventedKg float64 `json:"emissions_prevented_kg"`
	}

	UpdateReportRequest struct {
		Action string `json:"action" validate:"required,oneof=resolve dismiss"`
	}

	CreateOrganizationRequest struct {
		Name          string `json:"name" validate:"required"`
		Type          string `json:"type" validate:"required,oneof=ngo volunteer"`
		ContactPerson string `json:"contact_person" validate:"required"`
		Email         string `json:"email" validate:"required,email"`
	}

	OrganizationResponse struct {
		ID            string     `json:"id"`
		Name          string     `json:"name"`
		Type          string     `json:"type"`
		Status        string     `json:"status"`
		ContactPerson string     `json:"contact_person"`
		Email         string     `json:"email"`
		ApprovedAt    *time.Time `json:"approved_at,omitempty"`
		CreatedAt     time.Time  `json:"created_at"`
	}

	UpdateOrganizationRequest struct {
		Status string `json:"status" validate:"required,oneof=approved rejected"`
	}
)
