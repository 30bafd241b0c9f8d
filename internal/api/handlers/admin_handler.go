package handlers

import (
	"errors"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/internal/api/presenters"
	"FoodBridge-Backend/pkg/admin"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetTodayMetrics(c *fiber.Ctx) error
		GetReports(c *fiber.Ctx) error
		UpdateReportStatus(c *fiber.Ctx) error
		RegisterOrganization(c *fiber.Ctx) error
		GetOrganizations(c *fiber.Ctx) error
		UpdateOrganizationStatus(c *fiber.Ctx) error
		VerifyUser(c *fiber.Ctx) error
		FlagUser(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
		validator    *validator.Validate
	}
)

func NewAdminHandler(adminService admin.AdminService, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		adminService: adminService,
		validator:    validator,
	}
}

func moderationStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrReportNotFound),
		errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrReportNotPending),
		errors.Is(err, domain.ErrOrganizationNotPending):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

func (h *adminHandler) GetTodayMetrics(c *fiber.Ctx) error {
	metrics, err := h.adminService.GetTodayMetrics(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMetrics, err)
	}

	return presenters.SuccessResponse(c, metrics, fiber.StatusOK, domain.MessageSuccessGetMetrics)
}

func (h *adminHandler) GetReports(c *fiber.Ctx) error {
	reports, err := h.adminService.GetReports(c.Context(), c.Query("status"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReports, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"reports": reports,
	}, fiber.StatusOK, domain.MessageSuccessGetReports)
}

func (h *adminHandler) UpdateReportStatus(c *fiber.Ctx) error {
	adminID := c.Locals("user_id").(string)
	reportID := c.Params("id")

	req := new(domain.UpdateReportRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReport, err)
	}

	if err := h.adminService.UpdateReportStatus(c.Context(), reportID, *req, adminID); err != nil {
		return presenters.ErrorResponse(c, moderationStatus(err), domain.MessageFailedUpdateReport, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateReport)
}

func (h *adminHandler) RegisterOrganization(c *fiber.Ctx) error {
	req := new(domain.CreateOrganizationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrganization, err)
	}

	res, err := h.adminService.RegisterOrganization(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrganization, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateOrganization)
}

func (h *adminHandler) GetOrganizations(c *fiber.Ctx) error {
	orgs, err := h.adminService.GetOrganizations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetOrganizations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"organizations": orgs,
	}, fiber.StatusOK, domain.MessageSuccessGetOrganizations)
}

func (h *adminHandler) UpdateOrganizationStatus(c *fiber.Ctx) error {
	adminID := c.Locals("user_id").(string)
	orgID := c.Params("id")

	req := new(domain.UpdateOrganizationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrganization, err)
	}

	if err := h.adminService.UpdateOrganizationStatus(c.Context(), orgID, *req, adminID); err != nil {
		return presenters.ErrorResponse(c, moderationStatus(err), domain.MessageFailedUpdateOrganization, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateOrganization)
}

func (h *adminHandler) VerifyUser(c *fiber.Ctx) error {
	adminID := c.Locals("user_id").(string)
	userID := c.Params("id")

	if err := h.adminService.VerifyUser(c.Context(), userID, adminID); err != nil {
		return presenters.ErrorResponse(c, moderationStatus(err), domain.MessageFailedVerifyUser, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessVerifyUser)
}

func (h *adminHandler) FlagUser(c *fiber.Ctx) error {
	userID := c.Params("id")

	if err := h.adminService.FlagUser(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, moderationStatus(err), domain.MessageFailedFlagUser, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessFlagUser)
}
