package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/ops-portal/internal/domain"
)

// EnquiryRepository handles persistence for customer enquiries.
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *domain.Enquiry) error
	GetByID(ctx context.Context, id string) (*domain.Enquiry, error)
	List(ctx context.Context, limit, offset int) ([]domain.Enquiry, error)
	UpdateStatus(ctx context.Context, id string, status domain.EnquiryStatus) error
}

type enquiryRepository struct {
	pool DB
}

// NewEnquiryRepository instantiates the repository.
func NewEnquiryRepository(pool DB) EnquiryRepository {
	return &enquiryRepository{pool: pool}
}

const enquiryColumns = "id, name, email, phone, message, status, created_at, updated_at"

func (r *enquiryRepository) Create(ctx context.Context, enquiry *domain.Enquiry) error {
	const query = `
        INSERT INTO enquiries (name, email, phone, message, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		enquiry.Name,
		enquiry.Email,
		enquiry.Phone,
		enquiry.Message,
		enquiry.Status,
	).Scan(&enquiry.ID, &enquiry.CreatedAt, &enquiry.UpdatedAt)
}

func (r *enquiryRepository) GetByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	query := "SELECT " + enquiryColumns + " FROM enquiries WHERE id=$1"

	var enquiry domain.Enquiry
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&enquiry.ID,
		&enquiry.Name,
		&enquiry.Email,
		&enquiry.Phone,
		&enquiry.Message,
		&enquiry.Status,
		&enquiry.CreatedAt,
		&enquiry.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &enquiry, nil
}

func (r *enquiryRepository) List(ctx context.Context, limit, offset int) ([]domain.Enquiry, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := "SELECT " + enquiryColumns + " FROM enquiries ORDER BY created_at DESC" +
		fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Enquiry
	for rows.Next() {
		var enquiry domain.Enquiry
		if err := rows.Scan(
			&enquiry.ID,
			&enquiry.Name,
			&enquiry.Email,
			&enquiry.Phone,
			&enquiry.Message,
			&enquiry.Status,
			&enquiry.CreatedAt,
			&enquiry.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, enquiry)
	}
	return result, rows.Err()
}

func (r *enquiryRepository) UpdateStatus(ctx context.Context, id string, status domain.EnquiryStatus) error {
	const query = `UPDATE enquiries SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
