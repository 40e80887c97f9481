package repository

import (
	"context"
	"fmt"


	"github.com/spec-kit/ops-portal/internal/domain"
)

// LoginActivityRepository handles persistence for login audit rows.
type LoginActivityRepository interface {
	Record(ctx context.Context, activity *domain.LoginActivity) error
	List(ctx context.Context, email string, limit int) ([]domain.LoginActivity, error)
}

type loginActivityRepository struct {
	pool DB
}

// NewLoginActivityRepository instantiates the repository.
func NewLoginActivityRepository(pool DB) LoginActivityRepository {
	return &loginActivityRepository{pool: pool}
}

func (r *loginActivityRepository) Record(ctx context.Context, activity *domain.LoginActivity) error {
	const query = `
        INSERT INTO login_activities (email, success, ip, user_agent, reason)
        VALUES (LOWER($1),$2,$3,$4,$5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		activity.Email,
		activity.Success,
		activity.IP,
		activity.UserAgent,
		activity.Reason,
	).Scan(&activity.ID, &activity.CreatedAt)
}

func (r *loginActivityRepository) List(ctx context.Context, email string, limit int) ([]domain.LoginActivity, error) {
	query := "SELECT id, email, success, ip, user_agent, reason, created_at FROM login_activities"
	args := []any{}
	if email != "" {
		args = append(args, email)
		query += " WHERE email=LOWER($1)"
	}
	if limit <= 0 {
		limit = 200
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT %d", limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LoginActivity
	for rows.Next() {
		var activity domain.LoginActivity
		if err := rows.Scan(
			&activity.ID,
			&activity.Email,
			&activity.Success,
			&activity.IP,
			&activity.UserAgent,
			&activity.Reason,
			&activity.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, activity)
	}
	return result, rows.Err()
}
