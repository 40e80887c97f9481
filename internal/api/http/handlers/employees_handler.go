package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ops-portal/internal/api/dto"
	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/service"
)

// EmployeesHandler exposes the employee directory.
type EmployeesHandler struct {
	employeeService *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employeeService: employeeService}
}

// List handles GET /api/employees?search=.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	employees, err := h.employeeService.Search(c.Context(), c.Query("search"), limit, offset)
	if err != nil {
		return err
	}

	resp := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		resp = append(resp, dto.NewEmployeeResponse(&employees[i]))
	}
	return c.JSON(resp)
}

// Create handles POST /api/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email and password required")
	}

	var joinDate *time.Time
	if req.JoinDate != "" {
		parsed, err := time.Parse("2006-01-02", req.JoinDate)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "invalid joinDate, expected YYYY-MM-DD")
		}
		joinDate = &parsed
	}

	employee, err := h.employeeService.Create(c.Context(), service.CreateEmployeeInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Designation: req.Designation,
		JoinDate:    joinDate,
		Status:      domain.EmployeeStatus(req.Status),
		Role:        domain.Role(req.Role),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"employee": dto.NewEmployeeResponse(employee)})
}

// Update handles PUT /api/employees/:id. Only status and password patches
// are accepted; status goes through the workflow and broadcasts on success.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Status == nil && req.Password == nil {
		return fiber.NewError(http.StatusBadRequest, "nothing to update")
	}

	patch := service.Patch{Password: req.Password}
	if req.Status != nil {
		status := domain.EmployeeStatus(*req.Status)
		patch.Status = &status
	}

	employee, err := h.employeeService.Update(c.Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"employee": dto.NewEmployeeResponse(employee)})
}
