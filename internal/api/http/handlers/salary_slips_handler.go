package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ops-portal/internal/api/dto"
	"github.com/spec-kit/ops-portal/internal/auth"
	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/repository"
	"github.com/spec-kit/ops-portal/internal/service"
)

// SalarySlipsHandler exposes payroll statements.
type SalarySlipsHandler struct {
	slipService *service.SalarySlipService
}

// NewSalarySlipsHandler constructs handler.
func NewSalarySlipsHandler(slipService *service.SalarySlipService) *SalarySlipsHandler {
	return &SalarySlipsHandler{slipService: slipService}
}

// List handles GET /api/salary-slips?email=. Employees only see their own.
func (h *SalarySlipsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	email := c.Query("email")
	if principal.Role == domain.RoleEmployee {
		email = principal.Employee.Email
	}

	slips, err := h.slipService.List(c.Context(), repository.SalarySlipFilter{
		Email: email,
		Month: c.Query("month"),
		Year:  c.Query("year"),
	})
	if err != nil {
		return err
	}

	resp := make([]dto.SalarySlipResponse, 0, len(slips))
	for i := range slips {
		resp = append(resp, dto.NewSalarySlipResponse(&slips[i]))
	}
	return c.JSON(resp)
}

// Create handles POST /api/salary-slips (admin issues a slip).
func (h *SalarySlipsHandler) Create(c *fiber.Ctx) error {
	var req dto.SalarySlipRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	slip := &domain.SalarySlip{
		Email:           req.Email,
		Month:           req.Month,
		Year:            req.Year,
		Basic:           req.Basic,
		HRA:             req.HRA,
		Allowances:      req.Allowances,
		PF:              req.PF,
		Tax:             req.Tax,
		OtherDeductions: req.OtherDeductions,
		PDFPath:         req.PDFPath,
	}
	if err := h.slipService.Issue(c.Context(), slip); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewSalarySlipResponse(slip))
}

// Request handles POST /api/salary-slip-request (employee asks for a slip).
func (h *SalarySlipsHandler) Request(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.SalarySlipRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	email := req.Email
	if principal.Role == domain.RoleEmployee {
		email = principal.Employee.Email
	}
	if err := h.slipService.RequestSlip(c.Context(), email, req.Month, req.Year); err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"status": "requested"})
}
