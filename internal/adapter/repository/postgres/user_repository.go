package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/user/invoicing-dashboard/internal/adapter/metrics"
	"github.com/user/invoicing-dashboard/internal/domain"
)

// UserRepository implements domain.UserRepository against PostgreSQL.
type UserRepository struct {
	db      *sql.DB
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewUserRepository creates a new PostgreSQL user repository.
func NewUserRepository(db *sql.DB, logger *slog.Logger, m *metrics.Metrics) *UserRepository {
	return &UserRepository{db: db, logger: logger, metrics: m}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const op = "user_by_email"
	query := `
		SELECT id, name, email, password
		FROM users
		WHERE email = $1
	`

	var u domain.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Password,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "user", ID: email}
		}
		return nil, storeError(r.logger, r.metrics, op, err)
	}
	return &u, nil
}
