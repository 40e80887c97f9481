package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/ops-portal/internal/domain"
)

// ApplicationRepository handles persistence for job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	List(ctx context.Context, limit, offset int) ([]domain.Application, error)
	Delete(ctx context.Context, id string) error
}

type applicationRepository struct {
	pool DB
}

// NewApplicationRepository instantiates the repository.
func NewApplicationRepository(pool DB) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationColumns = "id, name, email, phone, role, resume_path, cover_letter_path, created_at, updated_at"

func (r *applicationRepository) Create(ctx context.Context, application *domain.Application) error {
	const query = `
        INSERT INTO applications (name, email, phone, role, resume_path, cover_letter_path)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		application.Name,
		application.Email,
		application.Phone,
		application.Role,
		application.ResumePath,
		application.CoverLetterPath,
	).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := "SELECT " + applicationColumns + " FROM applications WHERE id=$1"

	var application domain.Application
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&application.ID,
		&application.Name,
		&application.Email,
		&application.Phone,
		&application.Role,
		&application.ResumePath,
		&application.CoverLetterPath,
		&application.CreatedAt,
		&application.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) List(ctx context.Context, limit, offset int) ([]domain.Application, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := "SELECT " + applicationColumns + " FROM applications ORDER BY created_at DESC" +
		fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Application
	for rows.Next() {
		var application domain.Application
		if err := rows.Scan(
			&application.ID,
			&application.Name,
			&application.Email,
			&application.Phone,
			&application.Role,
			&application.ResumePath,
			&application.CoverLetterPath,
			&application.CreatedAt,
			&application.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, application)
	}
	return result, rows.Err()
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
