package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/repository"
	apperrors "github.com/spec-kit/ops-portal/pkg/util"
)

// SalarySlipService manages payroll statements.
type SalarySlipService struct {
	slips     repository.SalarySlipRepository
	employees repository.EmployeeRepository
	logger    *zap.Logger
}

// NewSalarySlipService builds the service.
func NewSalarySlipService(slips repository.SalarySlipRepository, employees repository.EmployeeRepository, logger *zap.Logger) *SalarySlipService {
	return &SalarySlipService{slips: slips, employees: employees, logger: logger}
}

// Issue computes totals and stores a slip for the named employee. Employee
// identity fields are resolved from the directory so the slip carries the
// canonical name, empId and designation.
func (s *SalarySlipService) Issue(ctx context.Context, slip *domain.SalarySlip) error {
	slip.Email = strings.ToLower(strings.TrimSpace(slip.Email))
	if slip.Email == "" || slip.Month == "" || slip.Year == "" {
		return apperrors.NewValidationError("email, month and year required", nil)
	}

	employee, err := s.employees.GetByEmail(ctx, slip.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("employee", map[string]any{"email": slip.Email})
		}
		return err
	}
	slip.EmployeeName = employee.Name
	slip.EmpID = employee.EmpID
	slip.Designation = employee.Designation

	slip.ComputeTotals()
	if err := s.slips.Create(ctx, slip); err != nil {
		return err
	}
	s.logger.Info("salary slip issued",
		zap.String("email", slip.Email),
		zap.String("month", slip.Month),
		zap.String("year", slip.Year))
	return nil
}

// List returns slips matching the filter.
func (s *SalarySlipService) List(ctx context.Context, filter repository.SalarySlipFilter) ([]domain.SalarySlip, error) {
	filter.Email = strings.ToLower(filter.Email)
	return s.slips.List(ctx, filter)
}

// RequestSlip records an employee's request for a missing slip. The request
// is informational; it only verifies the employee exists and logs the ask.
func (s *SalarySlipService) RequestSlip(ctx context.Context, email, month, year string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.employees.GetByEmail(ctx, email); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("employee", map[string]any{"email": email})
		}
		return err
	}
	s.logger.Info("salary slip requested",
		zap.String("email", email),
		zap.String("month", month),
		zap.String("year", year))
	return nil
}
