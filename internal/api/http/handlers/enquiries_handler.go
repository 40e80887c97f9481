package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ops-portal/internal/api/dto"
	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/service"
)

// EnquiriesHandler exposes enquiry intake and resolution.
type EnquiriesHandler struct {
	enquiryService *service.EnquiryService
}

// NewEnquiriesHandler constructs handler.
func NewEnquiriesHandler(enquiryService *service.EnquiryService) *EnquiriesHandler {
	return &EnquiriesHandler{enquiryService: enquiryService}
}

// List handles GET /api/enquiries.
func (h *EnquiriesHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	enquiries, err := h.enquiryService.List(c.Context(), limit, offset)
	if err != nil {
		return err
	}

	resp := make([]dto.EnquiryResponse, 0, len(enquiries))
	for i := range enquiries {
		resp = append(resp, dto.NewEnquiryResponse(&enquiries[i]))
	}
	return c.JSON(resp)
}

// Create handles POST /api/enquiries (public intake form).
func (h *EnquiriesHandler) Create(c *fiber.Ctx) error {
	var req dto.EnquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	enquiry := &domain.Enquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := h.enquiryService.Submit(c.Context(), enquiry); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewEnquiryResponse(enquiry))
}

// UpdateStatus handles PUT /api/enquiries/:id. The only accepted transition
// is to Resolved.
func (h *EnquiriesHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.EnquiryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if domain.EnquiryStatus(req.Status) != domain.EnquiryStatusResolved {
		return fiber.NewError(http.StatusBadRequest, "only Resolved is accepted")
	}

	enquiry, err := h.enquiryService.Resolve(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEnquiryResponse(enquiry))
}
