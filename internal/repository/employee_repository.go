package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/ops-portal/internal/domain"
)

// EmployeeRepository handles persistence for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	Update(ctx context.Context, employee *domain.Employee) error
	UpdateStatus(ctx context.Context, id string, status domain.EmployeeStatus) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	Search(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error)
}

// EmployeeFilter defines query params for employee listing. Term is matched
// as a case-insensitive substring over name, email and emp_id.
type EmployeeFilter struct {
	Term   string
	Status *domain.EmployeeStatus
	Limit  int
	Offset int
}

type employeeRepository struct {
	pool DB
}

// NewEmployeeRepository instantiates the repository.
func NewEmployeeRepository(pool DB) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

const employeeColumns = "id, emp_id, name, email, password_hash, designation, join_date, status, role, created_at, updated_at"

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	const query = `
        INSERT INTO employees (emp_id, name, email, password_hash, designation, join_date, status, role)
        VALUES ($1,$2,LOWER($3),$4,$5,$6,$7,$8)
        RETURNING id, email, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		employee.EmpID,
		employee.Name,
		employee.Email,
		employee.PasswordHash,
		employee.Designation,
		employee.JoinDate,
		employee.Status,
		employee.Role,
	).Scan(&employee.ID, &employee.Email, &employee.CreatedAt, &employee.UpdatedAt)
}

func (r *employeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	const query = `
        UPDATE employees
        SET emp_id=$1, name=$2, email=LOWER($3), password_hash=$4, designation=$5, join_date=$6, status=$7, role=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		employee.EmpID,
		employee.Name,
		employee.Email,
		employee.PasswordHash,
		employee.Designation,
		employee.JoinDate,
		employee.Status,
		employee.Role,
		employee.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) UpdateStatus(ctx context.Context, id string, status domain.EmployeeStatus) error {
	const query = `UPDATE employees SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const query = `UPDATE employees SET password_hash=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM employees WHERE id=$1"
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM employees WHERE email=LOWER($1)"
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *employeeRepository) Search(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM employees"
	args := []any{}
	clauses := []string{}

	if term := strings.TrimSpace(filter.Term); term != "" {
		args = append(args, "%"+term+"%")
		idx := len(args)
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR emp_id ILIKE $%d)", idx, idx, idx))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY created_at DESC"
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var employee domain.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.EmpID,
			&employee.Name,
			&employee.Email,
			&employee.PasswordHash,
			&employee.Designation,
			&employee.JoinDate,
			&employee.Status,
			&employee.Role,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, employee)
	}
	return result, rows.Err()
}

func (r *employeeRepository) scanOne(row pgx.Row) (*domain.Employee, error) {
	var employee domain.Employee
	if err := row.Scan(
		&employee.ID,
		&employee.EmpID,
		&employee.Name,
		&employee.Email,
		&employee.PasswordHash,
		&employee.Designation,
		&employee.JoinDate,
		&employee.Status,
		&employee.Role,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &employee, nil
}
