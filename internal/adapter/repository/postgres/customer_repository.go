package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/user/invoicing-dashboard/internal/adapter/metrics"
	"github.com/user/invoicing-dashboard/internal/domain"
)

// CustomerRepository implements domain.CustomerRepository against
// PostgreSQL.
type CustomerRepository struct {
	db      *sql.DB
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewCustomerRepository creates a new PostgreSQL customer repository.
func NewCustomerRepository(db *sql.DB, logger *slog.Logger, m *metrics.Metrics) *CustomerRepository {
	return &CustomerRepository{db: db, logger: logger, metrics: m}
}

func (r *CustomerRepository) All(ctx context.Context) ([]domain.CustomerField, error) {
	const op = "customers"
	query := `SELECT id, name FROM customers ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeError(r.logger, r.metrics, op, err)
	}
	defer rows.Close()

	var customers []domain.CustomerField
	for rows.Next() {
		var c domain.CustomerField
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, storeError(r.logger, r.metrics, op, err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(r.logger, r.metrics, op, err)
	}
	return customers, nil
}

func (r *CustomerRepository) FilteredWithTotals(ctx context.Context, query string) ([]domain.CustomerSummaryRow, error) {
	const op = "filtered_customers"
	sqlQuery := `
		SELECT customers.id, customers.name, customers.email, customers.image_url,
		       COUNT(invoices.id),
		       COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0)
		FROM customers
		LEFT JOIN invoices ON invoices.customer_id = customers.id
		WHERE customers.name ILIKE $1 OR customers.email ILIKE $1
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC
	`

	rows, err := r.db.QueryContext(ctx, sqlQuery, "%"+query+"%")
	if err != nil {
		return nil, storeError(r.logger, r.metrics, op, err)
	}
	defer rows.Close()

	var summaries []domain.CustomerSummaryRow
	for rows.Next() {
		var row domain.CustomerSummaryRow
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Email,
			&row.ImageURL,
			&row.InvoiceCount,
			&row.TotalPending,
			&row.TotalPaid,
		); err != nil {
			return nil, storeError(r.logger, r.metrics, op, err)
		}
		summaries = append(summaries, row)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(r.logger, r.metrics, op, err)
	}
	return summaries, nil
}
