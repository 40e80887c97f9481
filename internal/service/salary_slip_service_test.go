package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/repository"
	apperrors "github.com/spec-kit/ops-portal/pkg/util"
)

type fakeSlipRepo struct {
	created []*domain.SalarySlip
}

func (f *fakeSlipRepo) Create(_ context.Context, slip *domain.SalarySlip) error {
	f.created = append(f.created, slip)
	return nil
}

func (f *fakeSlipRepo) GetByID(_ context.Context, _ string) (*domain.SalarySlip, error) {
	return nil, nil
}

func (f *fakeSlipRepo) List(_ context.Context, _ repository.SalarySlipFilter) ([]domain.SalarySlip, error) {
	return nil, nil
}

func TestIssueSlipResolvesIdentityAndTotals(t *testing.T) {
	employees := newFakeEmployeeRepo()
	employees.add(&domain.Employee{
		ID:          "id-1",
		EmpID:       "EMP-42",
		Name:        "Alice",
		Email:       "alice@example.com",
		Designation: "Engineer",
		Status:      domain.EmployeeStatusActive,
	})
	slips := &fakeSlipRepo{}
	svc := NewSalarySlipService(slips, employees, zap.NewNop())

	slip := &domain.SalarySlip{
		Email: " Alice@Example.com ",
		// Caller-supplied identity fields are overridden from the directory.
		EmployeeName: "someone else",
		Month:        "August",
		Year:         "2026",
		Basic:        30000,
		HRA:          12000,
		PF:           3600,
	}
	require.NoError(t, svc.Issue(context.Background(), slip))

	require.Len(t, slips.created, 1)
	assert.Equal(t, "Alice", slip.EmployeeName)
	assert.Equal(t, "EMP-42", slip.EmpID)
	assert.Equal(t, "Engineer", slip.Designation)
	assert.Equal(t, 42000.0, slip.TotalEarnings)
	assert.Equal(t, 3600.0, slip.TotalDeductions)
	assert.Equal(t, 38400.0, slip.NetPay)
}

func TestIssueSlipUnknownEmployee(t *testing.T) {
	svc := NewSalarySlipService(&fakeSlipRepo{}, newFakeEmployeeRepo(), zap.NewNop())

	err := svc.Issue(context.Background(), &domain.SalarySlip{
		Email: "ghost@example.com",
		Month: "August",
		Year:  "2026",
	})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestIssueSlipRequiresPeriod(t *testing.T) {
	svc := NewSalarySlipService(&fakeSlipRepo{}, newFakeEmployeeRepo(), zap.NewNop())

	err := svc.Issue(context.Background(), &domain.SalarySlip{Email: "alice@example.com"})
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}
