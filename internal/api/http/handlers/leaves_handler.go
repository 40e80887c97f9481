package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ops-portal/internal/api/dto"
	"github.com/spec-kit/ops-portal/internal/auth"
	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/service"
)

// LeavesHandler exposes leave requests and auto-approval.
type LeavesHandler struct {
	leaveService *service.LeaveService
}

// NewLeavesHandler constructs handler.
func NewLeavesHandler(leaveService *service.LeaveService) *LeavesHandler {
	return &LeavesHandler{leaveService: leaveService}
}

// List handles GET /api/leaves?email=.
func (h *LeavesHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	email := c.Query("email")
	if principal.Role == domain.RoleEmployee {
		email = principal.Employee.Email
	}

	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	leaves, err := h.leaveService.List(c.Context(), email, limit, offset)
	if err != nil {
		return err
	}

	resp := make([]dto.LeaveResponse, 0, len(leaves))
	for i := range leaves {
		resp = append(resp, dto.NewLeaveResponse(&leaves[i]))
	}
	return c.JSON(resp)
}

// File handles POST /api/leaves.
func (h *LeavesHandler) File(c *fiber.Ctx) error {
	var req dto.FileLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.EmployeeEmail == "" || req.FromDate == "" || req.ToDate == "" {
		return fiber.NewError(http.StatusBadRequest, "employeeEmail, fromDate and toDate required")
	}

	fromDate, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid fromDate, expected YYYY-MM-DD")
	}
	toDate, err := time.Parse("2006-01-02", req.ToDate)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid toDate, expected YYYY-MM-DD")
	}

	leave := &domain.LeaveRequest{
		EmployeeName:  req.EmployeeName,
		EmployeeEmail: req.EmployeeEmail,
		FromDate:      fromDate,
		ToDate:        toDate,
		Days:          req.Days,
		Reason:        req.Reason,
		Type:          req.Type,
	}
	if err := h.leaveService.File(c.Context(), leave); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewLeaveResponse(leave))
}

// AutoApprove handles POST /api/leaves/auto-approve.
func (h *LeavesHandler) AutoApprove(c *fiber.Ctx) error {
	var req dto.AutoApproveRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	matched, modified, err := h.leaveService.AutoApprove(c.Context(), req.Email)
	if err != nil {
		return err
	}

	message := "Auto-approve completed"
	if req.Email != "" {
		message = "Auto-approve completed for " + req.Email
	}
	return c.JSON(dto.AutoApproveResponse{Message: message, Matched: matched, Modified: modified})
}

// Approve handles PUT /api/leaves/:id/approve.
func (h *LeavesHandler) Approve(c *fiber.Ctx) error {
	if err := h.leaveService.Approve(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "approved"})
}
