package repository

import (
	"context"
	"fmt"
	"strings"


	"github.com/spec-kit/ops-portal/internal/domain"
)

// SalarySlipRepository handles persistence for salary slips.
type SalarySlipRepository interface {
	Create(ctx context.Context, slip *domain.SalarySlip) error
	GetByID(ctx context.Context, id string) (*domain.SalarySlip, error)
	List(ctx context.Context, filter SalarySlipFilter) ([]domain.SalarySlip, error)
}

// SalarySlipFilter defines query params for slip listing.
type SalarySlipFilter struct {
	Email string
	Month string
	Year  string
	Limit int
}

type salarySlipRepository struct {
	pool DB
}

// NewSalarySlipRepository instantiates the repository.
func NewSalarySlipRepository(pool DB) SalarySlipRepository {
	return &salarySlipRepository{pool: pool}
}

const slipColumns = "id, employee_name, emp_id, email, designation, month, year, basic, hra, allowances, pf, tax, other_deductions, total_earnings, total_deductions, net_pay, pdf_path, created_at, updated_at"

func (r *salarySlipRepository) Create(ctx context.Context, slip *domain.SalarySlip) error {
	const query = `
        INSERT INTO salary_slips (employee_name, emp_id, email, designation, month, year, basic, hra, allowances, pf, tax, other_deductions, total_earnings, total_deductions, net_pay, pdf_path)
        VALUES ($1,$2,LOWER($3),$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING id, email, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		slip.EmployeeName,
		slip.EmpID,
		slip.Email,
		slip.Designation,
		slip.Month,
		slip.Year,
		slip.Basic,
		slip.HRA,
		slip.Allowances,
		slip.PF,
		slip.Tax,
		slip.OtherDeductions,
		slip.TotalEarnings,
		slip.TotalDeductions,
		slip.NetPay,
		slip.PDFPath,
	).Scan(&slip.ID, &slip.Email, &slip.CreatedAt, &slip.UpdatedAt)
}

func (r *salarySlipRepository) GetByID(ctx context.Context, id string) (*domain.SalarySlip, error) {
	query := "SELECT " + slipColumns + " FROM salary_slips WHERE id=$1"

	var slip domain.SalarySlip
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&slip.ID,
		&slip.EmployeeName,
		&slip.EmpID,
		&slip.Email,
		&slip.Designation,
		&slip.Month,
		&slip.Year,
		&slip.Basic,
		&slip.HRA,
		&slip.Allowances,
		&slip.PF,
		&slip.Tax,
		&slip.OtherDeductions,
		&slip.TotalEarnings,
		&slip.TotalDeductions,
		&slip.NetPay,
		&slip.PDFPath,
		&slip.CreatedAt,
		&slip.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &slip, nil
}

func (r *salarySlipRepository) List(ctx context.Context, filter SalarySlipFilter) ([]domain.SalarySlip, error) {
	query := "SELECT " + slipColumns + " FROM salary_slips"
	args := []any{}
	clauses := []string{}

	if filter.Email != "" {
		args = append(args, filter.Email)
		clauses = append(clauses, fmt.Sprintf("email=LOWER($%d)", len(args)))
	}
	if filter.Month != "" {
		args = append(args, filter.Month)
		clauses = append(clauses, fmt.Sprintf("month=$%d", len(args)))
	}
	if filter.Year != "" {
		args = append(args, filter.Year)
		clauses = append(clauses, fmt.Sprintf("year=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT %d", limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SalarySlip
	for rows.Next() {
		var slip domain.SalarySlip
		if err := rows.Scan(
			&slip.ID,
			&slip.EmployeeName,
			&slip.EmpID,
			&slip.Email,
			&slip.Designation,
			&slip.Month,
			&slip.Year,
			&slip.Basic,
			&slip.HRA,
			&slip.Allowances,
			&slip.PF,
			&slip.Tax,
			&slip.OtherDeductions,
			&slip.TotalEarnings,
			&slip.TotalDeductions,
			&slip.NetPay,
			&slip.PDFPath,
			&slip.CreatedAt,
			&slip.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, slip)
	}
	return result, rows.Err()
}
