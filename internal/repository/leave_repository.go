package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/ops-portal/internal/domain"
)

// LeaveRepository handles persistence for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, leave *domain.LeaveRequest) error
	GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
	List(ctx context.Context, filter LeaveFilter) ([]domain.LeaveRequest, error)
	// ApprovePending flips every pending request matching the optional email
	// filter to approved, returning how many were matched and modified.
	ApprovePending(ctx context.Context, email string) (matched, modified int64, err error)
	UpdateStatus(ctx context.Context, id string, status domain.LeaveStatus) error
}

// LeaveFilter defines query params for leave listing.
type LeaveFilter struct {
	Email  string
	Status *domain.LeaveStatus
	Limit  int
	Offset int
}

type leaveRepository struct {
	pool DB
}

// NewLeaveRepository instantiates the repository.
func NewLeaveRepository(pool DB) LeaveRepository {
	return &leaveRepository{pool: pool}
}

const leaveColumns = "id, employee_name, employee_email, from_date, to_date, days, reason, type, status, monthly_quota, leaves_taken_this_month, created_at, updated_at"

func (r *leaveRepository) Create(ctx context.Context, leave *domain.LeaveRequest) error {
	const query = `
        INSERT INTO leave_requests (employee_name, employee_email, from_date, to_date, days, reason, type, status, monthly_quota, leaves_taken_this_month)
        VALUES ($1,LOWER($2),$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, employee_email, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		leave.EmployeeName,
		leave.EmployeeEmail,
		leave.FromDate,
		leave.ToDate,
		leave.Days,
		leave.Reason,
		leave.Type,
		leave.Status,
		leave.MonthlyQuota,
		leave.LeavesTakenThisMonth,
	).Scan(&leave.ID, &leave.EmployeeEmail, &leave.CreatedAt, &leave.UpdatedAt)
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	query := "SELECT " + leaveColumns + " FROM leave_requests WHERE id=$1"

	var leave domain.LeaveRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&leave.ID,
		&leave.EmployeeName,
		&leave.EmployeeEmail,
		&leave.FromDate,
		&leave.ToDate,
		&leave.Days,
		&leave.Reason,
		&leave.Type,
		&leave.Status,
		&leave.MonthlyQuota,
		&leave.LeavesTakenThisMonth,
		&leave.CreatedAt,
		&leave.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) List(ctx context.Context, filter LeaveFilter) ([]domain.LeaveRequest, error) {
	query := "SELECT " + leaveColumns + " FROM leave_requests"
	args := []any{}
	clauses := []string{}

	if filter.Email != "" {
		args = append(args, filter.Email)
		clauses = append(clauses, fmt.Sprintf("employee_email=LOWER($%d)", len(args)))
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
		limit = 100
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

	var result []domain.LeaveRequest
	for rows.Next() {
		var leave domain.LeaveRequest
		if err := rows.Scan(
			&leave.ID,
			&leave.EmployeeName,
			&leave.EmployeeEmail,
			&leave.FromDate,
			&leave.ToDate,
			&leave.Days,
			&leave.Reason,
			&leave.Type,
			&leave.Status,
			&leave.MonthlyQuota,
			&leave.LeavesTakenThisMonth,
			&leave.CreatedAt,
			&leave.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, leave)
	}
	return result, rows.Err()
}

func (r *leaveRepository) ApprovePending(ctx context.Context, email string) (int64, int64, error) {
	countQuery := "SELECT COUNT(*) FROM leave_requests WHERE status=$1"
	args := []any{domain.LeaveStatusPending}
	if email != "" {
		args = append(args, email)
		countQuery += " AND employee_email=LOWER($2)"
	}

	var matched int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&matched); err != nil {
		return 0, 0, err
	}

	updateQuery := "UPDATE leave_requests SET status=$1, updated_at=NOW() WHERE status=$2"
	updateArgs := []any{domain.LeaveStatusApproved, domain.LeaveStatusPending}
	if email != "" {
		updateArgs = append(updateArgs, email)
		updateQuery += " AND employee_email=LOWER($3)"
	}

	cmd, err := r.pool.Exec(ctx, updateQuery, updateArgs...)
	if err != nil {
		return 0, 0, err
	}
	return matched, cmd.RowsAffected(), nil
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status domain.LeaveStatus) error {
	const query = `UPDATE leave_requests SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
