package dto

import (
	"time"

	"github.com/spec-kit/ops-portal/internal/domain"
)

// CreateEmployeeRequest payload for POST /api/employees.
type CreateEmployeeRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Designation string `json:"designation"`
	JoinDate    string `json:"joinDate"`
	Status      string `json:"status"`
	Role        string `json:"role"`
}

// UpdateEmployeeRequest is the partial patch for PUT /api/employees/:id.
// Only status and password are ever updated through this route.
type UpdateEmployeeRequest struct {
	Status   *string `json:"status"`
	Password *string `json:"password"`
}

// EmployeeResponse serializes an employee without the password hash. Field
// names match what the portal clients already consume.
type EmployeeResponse struct {
	ID          string     `json:"_id"`
	EmpID       string     `json:"empId"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Designation string     `json:"designation"`
	JoinDate    *time.Time `json:"joinDate,omitempty"`
	Status      string     `json:"status"`
	Role        string     `json:"role"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewEmployeeResponse maps the domain entity.
func NewEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		EmpID:       e.EmpID,
		Name:        e.Name,
		Email:       e.Email,
		Designation: e.Designation,
		JoinDate:    e.JoinDate,
		Status:      string(e.Status),
		Role:        string(e.Role),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
