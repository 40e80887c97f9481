package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ops-portal/internal/api/dto"
	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/service"
)

// IntakeHandler exposes quotation and job application intake.
type IntakeHandler struct {
	intakeService *service.IntakeService
}

// NewIntakeHandler constructs handler.
func NewIntakeHandler(intakeService *service.IntakeService) *IntakeHandler {
	return &IntakeHandler{intakeService: intakeService}
}

// ListQuotations handles GET /api/quotations.
func (h *IntakeHandler) ListQuotations(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	quotations, err := h.intakeService.ListQuotations(c.Context(), limit, offset)
	if err != nil {
		return err
	}

	resp := make([]dto.QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		resp = append(resp, dto.QuotationResponse{
			ID:        q.ID,
			Name:      q.Name,
			Email:     q.Email,
			Phone:     q.Phone,
			Message:   q.Message,
			Status:    q.Status,
			CreatedAt: q.CreatedAt,
		})
	}
	return c.JSON(resp)
}

// CreateQuotation handles POST /api/quotations (public intake form).
func (h *IntakeHandler) CreateQuotation(c *fiber.Ctx) error {
	var req dto.QuotationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	quotation := &domain.Quotation{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := h.intakeService.SubmitQuotation(c.Context(), quotation); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"status": "submitted", "_id": quotation.ID})
}

// ListApplications handles GET /api/applications.
func (h *IntakeHandler) ListApplications(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	applications, err := h.intakeService.ListApplications(c.Context(), limit, offset)
	if err != nil {
		return err
	}

	resp := make([]dto.ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		resp = append(resp, dto.ApplicationResponse{
			ID:              a.ID,
			Name:            a.Name,
			Email:           a.Email,
			Phone:           a.Phone,
			Role:            a.Role,
			ResumePath:      a.ResumePath,
			CoverLetterPath: a.CoverLetterPath,
			CreatedAt:       a.CreatedAt,
		})
	}
	return c.JSON(resp)
}

// CreateApplication handles POST /api/applications.
func (h *IntakeHandler) CreateApplication(c *fiber.Ctx) error {
	var req dto.ApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	application := &domain.Application{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Role:            req.Role,
		ResumePath:      req.ResumePath,
		CoverLetterPath: req.CoverLetterPath,
	}
	if err := h.intakeService.SubmitApplication(c.Context(), application); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"status": "submitted", "_id": application.ID})
}

// DeleteApplication handles DELETE /api/applications/:id.
func (h *IntakeHandler) DeleteApplication(c *fiber.Ctx) error {
	if err := h.intakeService.DeleteApplication(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}
