package handlers

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/internal/api/presenters"
	"FoodBridge-Backend/pkg/report"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReportHandler interface {
		CreateReport(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
		validator     *validator.Validate
	}
)

func NewReportHandler(reportService report.ReportService, validator *validator.Validate) ReportHandler {
	return &reportHandler{
		reportService: reportService,
		validator:     validator,
	}
}

func (h *reportHandler) CreateReport(c *fiber.Ctx) error {
	reporterID := c.Locals("user_id").(string)

	req := new(domain.CreateReportRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReport, err)
	}

	res, err := h.reportService.CreateReport(c.Context(), *req, reporterID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReport)
}
