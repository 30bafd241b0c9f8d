package handlers

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/internal/api/presenters"
	"FoodBridge-Backend/internal/events"
	"FoodBridge-Backend/pkg/donation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		CreateDonation(c *fiber.Ctx) error
		GetDonorDonations(c *fiber.Ctx) error
		GetOpenDonations(c *fiber.Ctx) error
		GetMapMarkers(c *fiber.Ctx) error
		StreamDonationFeed(c *fiber.Ctx) error
		GetDonationByID(c *fiber.Ctx) error
		UpdateDonation(c *fiber.Ctx) error
		DeleteDonation(c *fiber.Ctx) error
		AcceptDonation(c *fiber.Ctx) error
		AdvanceDonationStatus(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
		broker          *events.Broker
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate, broker *events.Broker) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
		broker:          broker,
	}
}

// lifecycleStatus maps service errors onto the HTTP error taxonomy:
// validation 400, ownership 403, missing 404, state conflicts 409.
func lifecycleStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrDonationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotDonationOwner):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrDonationNotEditable),
		errors.Is(err, domain.ErrDonationAlreadyTaken),
		errors.Is(err, domain.ErrInvalidStatusChange):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

func (h *donationHandler) CreateDonation(c *fiber.Ctx) error {
	donorID := c.Locals("user_id").(string)

	req := new(domain.DonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image, _ = c.FormFile("image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	res, err := h.donationService.CreateDonation(c.Context(), *req, donorID)
	if err != nil {
		return presenters.ErrorResponse(c, lifecycleStatus(err), domain.MessageFailedCreateDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) GetDonorDonations(c *fiber.Ctx) error {
	donorID := c.Locals("user_id").(string)
	page, limit := pagination(c)

	donations, count, err := h.donationService.GetDonorDonations(c.Context(), donorID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"donations": donations,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetOpenDonations(c *fiber.Ctx) error {
	page, limit := pagination(c)

	req := domain.OpenDonationsRequest{
		Search:    c.Query("search"),
		DonorType: c.Query("donor_type"),
		FoodType:  c.Query("food_type"),
		Category:  c.Query("category"),
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonations, err)
	}

	donations, count, err := h.donationService.GetOpenDonations(c.Context(), req, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"donations": donations,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetMapMarkers(c *fiber.Ctx) error {
	markers, err := h.donationService.GetMapMarkers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMapMarkers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"markers": markers,
	}, fiber.StatusOK, domain.MessageSuccessGetMapMarkers)
}

// StreamDonationFeed pushes donation table changes as server-sent events so
// dashboards can refresh markers without polling.
func (h *donationHandler) StreamDonationFeed(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	sub, cancel := h.broker.Subscribe()

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()
		keepAlive := time.NewTicker(30 * time.Second)
		defer keepAlive.Stop()

		for {
			select {
			case ev, ok := <-sub:
				if !ok {
					return
				}
				payload, err := json.Marshal(ev)
				if err != nil {
					continue
				}
				fmt.Fprintf(w, "event: donation\ndata: %s\n\n", payload)
				if err := w.Flush(); err != nil {
					return
				}
			case <-keepAlive.C:
				fmt.Fprint(w, ": keep-alive\n\n")
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})
	return nil
}

func (h *donationHandler) GetDonationByID(c *fiber.Ctx) error {
	donationID := c.Params("id")
	if donationID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonations, domain.ErrDonationNotFound)
	}

	res, err := h.donationService.GetDonationByID(c.Context(), donationID)
	if err != nil {
		return presenters.ErrorResponse(c, lifecycleStatus(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) UpdateDonation(c *fiber.Ctx) error {
	callerID := c.Locals("user_id").(string)
	donationID := c.Params("id")

	req := new(domain.DonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image, _ = c.FormFile("image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDonation, err)
	}

	if err := h.donationService.UpdateDonation(c.Context(), donationID, *req, callerID); err != nil {
		return presenters.ErrorResponse(c, lifecycleStatus(err), domain.MessageFailedUpdateDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateDonation)
}

func (h *donationHandler) DeleteDonation(c *fiber.Ctx) error {
	callerID := c.Locals("user_id").(string)
	donationID := c.Params("id")

	if err := h.donationService.DeleteDonation(c.Context(), donationID, callerID); err != nil {
		return presenters.ErrorResponse(c, lifecycleStatus(err), domain.MessageFailedDeleteDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDonation)
}

func (h *donationHandler) AcceptDonation(c *fiber.Ctx) error {
	receiverID := c.Locals("user_id").(string)
	donationID := c.Params("id")

	if err := h.donationService.AcceptDonation(c.Context(), donationID, receiverID); err != nil {
		return presenters.ErrorResponse(c, lifecycleStatus(err), domain.MessageFailedAcceptDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAcceptDonation)
}

func (h *donationHandler) AdvanceDonationStatus(c *fiber.Ctx) error {
	donationID := c.Params("id")

	req := new(domain.AdvanceDonationStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdvanceDonation, err)
	}

	if err := h.donationService.AdvanceDonationStatus(c.Context(), donationID, req.Status); err != nil {
		return presenters.ErrorResponse(c, lifecycleStatus(err), domain.MessageFailedAdvanceDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAdvanceDonation)
}

func pagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	return page, limit
}
