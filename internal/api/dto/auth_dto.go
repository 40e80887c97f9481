package dto

import (
	"time"

	"github.com/spec-kit/ops-portal/internal/domain"
)

// LoginRequest payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse mirrors the original portal's login envelope.
type LoginResponse struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Role      domain.Role       `json:"role"`
	Employee  *EmployeeResponse `json:"employee,omitempty"`
}

// LoginActivityResponse is one audit row.
type LoginActivityResponse struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	Success   bool      `json:"success"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
