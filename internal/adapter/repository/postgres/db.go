// Package postgres implements the store repositories with explicit
// parameterized SQL through database/sql. No statement is ever assembled
// from user input.
package postgres

import (
	"database/sql"
	"log/slog"

	"github.com/user/invoicing-dashboard/internal/adapter/metrics"
	"github.com/user/invoicing-dashboard/internal/domain"
)

// Open opens a bounded connection pool against PostgreSQL. Callers own the
// pool for the process lifetime and inject it into the repositories.
func Open(dsn string, maxOpenConns int) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxOpenConns)
	return db, nil
}

// storeError logs the underlying store failure with operation context and
// returns the sanitized domain error. Detail never reaches the caller.
func storeError(logger *slog.Logger, m *metrics.Metrics, op string, err error) error {
	logger.Error("store operation failed", "op", op, "error", err)
	if m != nil {
		m.QueryErrorsTotal.WithLabelValues(op).Inc()
	}
	return &domain.DataAccessError{Op: op}
}
