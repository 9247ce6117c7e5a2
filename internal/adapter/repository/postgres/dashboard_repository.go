package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/user/invoicing-dashboard/internal/adapter/metrics"
	"github.com/user/invoicing-dashboard/internal/domain"
)

// DashboardRepository implements domain.DashboardRepository against
// PostgreSQL.
type DashboardRepository struct {
	db      *sql.DB
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewDashboardRepository creates a new PostgreSQL dashboard repository.
func NewDashboardRepository(db *sql.DB, logger *slog.Logger, m *metrics.Metrics) *DashboardRepository {
	return &DashboardRepository{db: db, logger: logger, metrics: m}
}

func (r *DashboardRepository) RevenueSnapshots(ctx context.Context) ([]domain.RevenueSnapshot, error) {
	const op = "revenue"
	query := `SELECT month, revenue FROM revenue`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeError(r.logger, r.metrics, op, err)
	}
	defer rows.Close()

	var snapshots []domain.RevenueSnapshot
	for rows.Next() {
		var s domain.RevenueSnapshot
		if err := rows.Scan(&s.Month, &s.Revenue); err != nil {
			return nil, storeError(r.logger, r.metrics, op, err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(r.logger, r.metrics, op, err)
	}
	return snapshots, nil
}

// CardData computes the four summary aggregates as scalar subqueries in a
// single statement, one round trip instead of four.
func (r *DashboardRepository) CardData(ctx context.Context) (*domain.CardData, error) {
	const op = "card_data"
	query := `
		SELECT
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM invoices),
			(SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = 'paid'),
			(SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = 'pending')
	`

	var cards domain.CardData
	err := r.db.QueryRowContext(ctx, query).Scan(
		&cards.CustomerCount,
		&cards.InvoiceCount,
		&cards.TotalPaid,
		&cards.TotalPending,
	)
	if err != nil {
		return nil, storeError(r.logger, r.metrics, op, err)
	}
	return &cards, nil
}
