package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ops-portal/internal/api/dto"
	"github.com/spec-kit/ops-portal/internal/auth"
	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/service"
)

// AuthHandler exposes login and the login audit trail.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	lc := service.LoginContext{IP: c.IP(), UserAgent: c.Get("User-Agent")}
	employee, token, exp, err := h.authService.Login(c.Context(), req.Email, req.Password, lc)
	if err != nil {
		return err
	}

	resp := dto.NewEmployeeResponse(employee)
	return c.JSON(dto.LoginResponse{
		Token:     token,
		ExpiresAt: exp,
		Role:      employee.Role,
		Employee:  &resp,
	})
}

// ListLoginActivities handles GET /api/login-activities. Admins and managers
// see every row; employees only their own.
func (h *AuthHandler) ListLoginActivities(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	email := c.Query("email")
	if principal.Role == domain.RoleEmployee {
		email = principal.Employee.Email
	}

	limit, _ := strconv.Atoi(c.Query("limit", "200"))
	activities, err := h.authService.ListActivities(c.Context(), email, limit)
	if err != nil {
		return err
	}

	resp := make([]dto.LoginActivityResponse, 0, len(activities))
	for i := range activities {
		a := activities[i]
		resp = append(resp, dto.LoginActivityResponse{
			ID:        a.ID,
			Email:     a.Email,
			Success:   a.Success,
			IP:        a.IP,
			UserAgent: a.UserAgent,
			Reason:    a.Reason,
			CreatedAt: a.CreatedAt,
		})
	}
	return c.JSON(resp)
}
