package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/ops-portal/internal/auth"
	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/events"
	"github.com/spec-kit/ops-portal/internal/repository"
	apperrors "github.com/spec-kit/ops-portal/pkg/util"
)

// EmployeeService manages employee records and the status workflow.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
}

// NewEmployeeService builds the service.
func NewEmployeeService(employees repository.EmployeeRepository, dispatcher events.Dispatcher, logger *zap.Logger, bcryptCost int) *EmployeeService {
	return &EmployeeService{
		employees:  employees,
		dispatcher: dispatcher,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// CreateEmployeeInput carries attributes for a new record.
type CreateEmployeeInput struct {
	Name        string
	Email       string
	Password    string
	Designation string
	JoinDate    *time.Time
	Status      domain.EmployeeStatus
	Role        domain.Role
}

// Create registers a new employee. Email must be unused; empId is generated
// when not supplied by the caller.
func (s *EmployeeService) Create(ctx context.Context, in CreateEmployeeInput) (*domain.Employee, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Name == "" {
		return nil, apperrors.NewValidationError("name and email required", nil)
	}

	if _, err := s.employees.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", map[string]any{"email": email})
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.EmployeeStatusActive
	}
	role := in.Role
	if role == "" {
		role = domain.RoleEmployee
	}

	employee := &domain.Employee{
		EmpID:        "EMP-" + strings.ToUpper(uuid.NewString()[:8]),
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Designation:  in.Designation,
		JoinDate:     in.JoinDate,
		Status:       status,
		Role:         role,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Search lists employees matching a substring term over name, email and empId.
func (s *EmployeeService) Search(ctx context.Context, term string, limit, offset int) ([]domain.Employee, error) {
	return s.employees.Search(ctx, repository.EmployeeFilter{Term: term, Limit: limit, Offset: offset})
}

// Patch carries the only fields the portal ever updates in place.
type Patch struct {
	Status   *domain.EmployeeStatus
	Password *string
}

// Update applies a partial patch to an employee. Status changes are gated by
// the workflow table and broadcast on success; a rejected transition leaves
// the record untouched.
func (s *EmployeeService) Update(ctx context.Context, id string, patch Patch) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return nil, err
	}

	if patch.Status != nil {
		newStatus := *patch.Status
		if !domain.CanTransitionEmployee(employee.Status, newStatus) {
			return nil, apperrors.NewValidationError("invalid status transition", map[string]any{
				"from": string(employee.Status),
				"to":   string(newStatus),
			})
		}
		if err := s.employees.UpdateStatus(ctx, id, newStatus); err != nil {
			return nil, err
		}
		employee.Status = newStatus

		if s.dispatcher != nil {
			_ = s.dispatcher.Publish(ctx, events.Event{
				ID:        uuid.NewString(),
				Type:      events.EventEmployeeStatusChanged,
				Timestamp: time.Now(),
				Payload: events.EmployeeStatusChangedPayload{
					Email:  employee.Email,
					Status: newStatus,
				},
			})
		}
		s.logger.Info("employee status changed",
			zap.String("email", employee.Email),
			zap.String("status", string(newStatus)))
	}

	if patch.Password != nil && *patch.Password != "" {
		hash, err := auth.HashPassword(*patch.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		if err := s.employees.UpdatePassword(ctx, id, hash); err != nil {
			return nil, err
		}
		employee.PasswordHash = hash
	}

	return employee, nil
}
