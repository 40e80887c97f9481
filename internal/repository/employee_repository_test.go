package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ops-portal/internal/domain"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func employeeRows(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "emp_id", "name", "email", "password_hash", "designation",
		"join_date", "status", "role", "created_at", "updated_at",
	}).AddRow(
		"id-1", "EMP-1", "Alice", "alice@example.com", "hash", "Engineer",
		(*time.Time)(nil), domain.EmployeeStatusActive, domain.RoleEmployee, now, now,
	)
}

func TestEmployeeGetByEmailLowercasesArgument(t *testing.T) {
	mock := newMockPool(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM employees WHERE email=LOWER\(\$1\)`).
		WithArgs("Alice@Example.com").
		WillReturnRows(employeeRows(now))

	repo := NewEmployeeRepository(mock)
	employee, err := repo.GetByEmail(context.Background(), "Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", employee.Email)
	assert.Equal(t, domain.EmployeeStatusActive, employee.Status)
}

func TestEmployeeGetByIDNotFound(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectQuery(`SELECT .+ FROM employees WHERE id=\$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	repo := NewEmployeeRepository(mock)
	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestEmployeeUpdateStatus(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectExec(`UPDATE employees SET status=\$1, updated_at=NOW\(\) WHERE id=\$2`).
		WithArgs(domain.EmployeeStatusInactive, "id-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewEmployeeRepository(mock)
	assert.NoError(t, repo.UpdateStatus(context.Background(), "id-1", domain.EmployeeStatusInactive))
}

func TestEmployeeUpdateStatusMissingRow(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectExec(`UPDATE employees SET status=`).
		WithArgs(domain.EmployeeStatusInactive, "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewEmployeeRepository(mock)
	err := repo.UpdateStatus(context.Background(), "missing", domain.EmployeeStatusInactive)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestEmployeeSearchBuildsSubstringClause(t *testing.T) {
	mock := newMockPool(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM employees WHERE \(name ILIKE \$1 OR email ILIKE \$1 OR emp_id ILIKE \$1\) ORDER BY created_at DESC LIMIT 50 OFFSET 0`).
		WithArgs("%alice%").
		WillReturnRows(employeeRows(now))

	repo := NewEmployeeRepository(mock)
	result, err := repo.Search(context.Background(), EmployeeFilter{Term: "alice"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "EMP-1", result[0].EmpID)
}
