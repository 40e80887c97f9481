package repository

import (
	"context"
	"fmt"


	"github.com/spec-kit/ops-portal/internal/domain"
)

// QuotationRepository handles persistence for quotation requests.
type QuotationRepository interface {
	Create(ctx context.Context, quotation *domain.Quotation) error
	List(ctx context.Context, limit, offset int) ([]domain.Quotation, error)
}

type quotationRepository struct {
	pool DB
}

// NewQuotationRepository instantiates the repository.
func NewQuotationRepository(pool DB) QuotationRepository {
	return &quotationRepository{pool: pool}
}

func (r *quotationRepository) Create(ctx context.Context, quotation *domain.Quotation) error {
	const query = `
        INSERT INTO quotations (name, email, phone, message, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		quotation.Name,
		quotation.Email,
		quotation.Phone,
		quotation.Message,
		quotation.Status,
	).Scan(&quotation.ID, &quotation.CreatedAt, &quotation.UpdatedAt)
}

func (r *quotationRepository) List(ctx context.Context, limit, offset int) ([]domain.Quotation, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := "SELECT id, name, email, phone, message, status, created_at, updated_at FROM quotations ORDER BY created_at DESC" +
		fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Quotation
	for rows.Next() {
		var quotation domain.Quotation
		if err := rows.Scan(
			&quotation.ID,
			&quotation.Name,
			&quotation.Email,
			&quotation.Phone,
			&quotation.Message,
			&quotation.Status,
			&quotation.CreatedAt,
			&quotation.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, quotation)
	}
	return result, rows.Err()
}
