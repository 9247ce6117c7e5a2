package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/user/invoicing-dashboard/internal/adapter/metrics"
	"github.com/user/invoicing-dashboard/internal/domain"
)

// InvoiceRepository implements domain.InvoiceRepository against PostgreSQL.
type InvoiceRepository struct {
	db      *sql.DB
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewInvoiceRepository creates a new PostgreSQL invoice repository. The
// metrics handle is optional; pass nil to disable instrumentation.
func NewInvoiceRepository(db *sql.DB, logger *slog.Logger, m *metrics.Metrics) *InvoiceRepository {
	return &InvoiceRepository{db: db, logger: logger, metrics: m}
}

// filterPredicate matches invoices whose customer name or email contains
// the query, or whose status equals the query text exactly. The second
// branch only ever fires for the literal strings "pending" and "paid".
const filterPredicate = `
	(customers.name ILIKE $1 OR customers.email ILIKE $1 OR invoices.status = $2)`

func (r *InvoiceRepository) Latest(ctx context.Context, limit int) ([]domain.InvoiceWithCustomer, error) {
	const op = "latest_invoices"
	query := `
		SELECT invoices.id, invoices.amount, invoices.date, invoices.status,
		       customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON customers.id = invoices.customer_id
		ORDER BY invoices.date DESC, invoices.id DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, storeError(r.logger, r.metrics, op, err)
	}
	defer rows.Close()

	return scanInvoicesWithCustomer(rows, r.logger, r.metrics, op)
}

func (r *InvoiceRepository) Filtered(ctx context.Context, query string, limit, offset int) ([]domain.InvoiceWithCustomer, error) {
	const op = "filtered_invoices"
	sqlQuery := `
		SELECT invoices.id, invoices.amount, invoices.date, invoices.status,
		       customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON customers.id = invoices.customer_id
		WHERE ` + filterPredicate + `
		ORDER BY invoices.date DESC, invoices.id DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.QueryContext(ctx, sqlQuery, "%"+query+"%", query, limit, offset)
	if err != nil {
		return nil, storeError(r.logger, r.metrics, op, err)
	}
	defer rows.Close()

	return scanInvoicesWithCustomer(rows, r.logger, r.metrics, op)
}

func (r *InvoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	const op = "count_filtered_invoices"
	sqlQuery := `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON customers.id = invoices.customer_id
		WHERE ` + filterPredicate

	var count int64
	if err := r.db.QueryRowContext(ctx, sqlQuery, "%"+query+"%", query).Scan(&count); err != nil {
		return 0, storeError(r.logger, r.metrics, op, err)
	}
	return count, nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	const op = "invoice_by_id"
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1
	`

	var inv domain.Invoice
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&inv.ID,
		&inv.CustomerID,
		&inv.Amount,
		&inv.Status,
		&inv.Date,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "invoice", ID: id.String()}
		}
		return nil, storeError(r.logger, r.metrics, op, err)
	}
	return &inv, nil
}

func (r *InvoiceRepository) Insert(ctx context.Context, inv domain.Invoice) error {
	const op = "save_invoice"
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query, inv.ID, inv.CustomerID, inv.Amount, inv.Status, inv.Date)
	if err != nil {
		return storeError(r.logger, r.metrics, op, err)
	}
	return nil
}

func (r *InvoiceRepository) Update(ctx context.Context, upd domain.InvoiceUpdate) error {
	const op = "update_invoice"
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`

	res, err := r.db.ExecContext(ctx, query, upd.CustomerID, upd.Amount, upd.Status, upd.ID)
	if err != nil {
		return storeError(r.logger, r.metrics, op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storeError(r.logger, r.metrics, op, err)
	}
	if affected == 0 {
		return &domain.NotFoundError{Entity: "invoice", ID: upd.ID.String()}
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "delete_invoice"
	query := `DELETE FROM invoices WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return storeError(r.logger, r.metrics, op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storeError(r.logger, r.metrics, op, err)
	}
	if affected == 0 {
		return &domain.NotFoundError{Entity: "invoice", ID: id.String()}
	}
	return nil
}

func scanInvoicesWithCustomer(rows *sql.Rows, logger *slog.Logger, m *metrics.Metrics, op string) ([]domain.InvoiceWithCustomer, error) {
	var invoices []domain.InvoiceWithCustomer
	for rows.Next() {
		var inv domain.InvoiceWithCustomer
		if err := rows.Scan(
			&inv.ID,
			&inv.Amount,
			&inv.Date,
			&inv.Status,
			&inv.CustomerName,
			&inv.CustomerEmail,
			&inv.CustomerImageURL,
		); err != nil {
			return nil, storeError(logger, m, op, err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(logger, m, op, err)
	}
	return invoices, nil
}
