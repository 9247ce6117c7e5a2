package domain

import (
	"context"

	"github.com/google/uuid"
)

// InvoiceRepository defines the store operations for invoices. All
// implementations execute parameterized statements only.
type InvoiceRepository interface {
	// Latest returns the most recent invoices by date descending, joined
	// with customer display fields.
	Latest(ctx context.Context, limit int) ([]InvoiceWithCustomer, error)

	// Filtered returns one page of invoices matching the free-text query:
	// a case-insensitive substring match on customer name or email, or an
	// exact match on status when the query equals a status value.
	Filtered(ctx context.Context, query string, limit, offset int) ([]InvoiceWithCustomer, error)

	// CountFiltered returns the number of invoices matching the same
	// predicate as Filtered.
	CountFiltered(ctx context.Context, query string) (int64, error)

	// FindByID returns the invoice with the given id, or NotFoundError.
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// Insert stores a fully assembled invoice row.
	Insert(ctx context.Context, inv Invoice) error

	// Update rewrites customer, amount, and status for the matching row.
	// Zero rows affected is a NotFoundError.
	Update(ctx context.Context, upd InvoiceUpdate) error

	// Delete removes the matching row. Zero rows affected is a
	// NotFoundError.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CustomerRepository defines the read operations for customers.
type CustomerRepository interface {
	// All returns every customer's id and name, ordered by name.
	All(ctx context.Context) ([]CustomerField, error)

	// FilteredWithTotals returns customers matching the query with their
	// per-customer invoice count and pending/paid totals.
	FilteredWithTotals(ctx context.Context, query string) ([]CustomerSummaryRow, error)
}

// DashboardRepository defines the aggregate reads behind the overview page.
type DashboardRepository interface {
	// RevenueSnapshots returns the pre-populated monthly revenue rows.
	RevenueSnapshots(ctx context.Context) ([]RevenueSnapshot, error)

	// CardData computes all four summary aggregates in a single round
	// trip. Empty tables yield zeroes, not an error.
	CardData(ctx context.Context) (*CardData, error)
}

// UserRepository defines the user lookup for credential checks.
type UserRepository interface {
	// FindByEmail returns the user with the exact email, or NotFoundError.
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// Dashboard cache keys. Writes to invoices invalidate all three.
const (
	CacheKeyRevenue        = "dashboard:revenue"
	CacheKeyLatestInvoices = "dashboard:latest_invoices"
	CacheKeyCards          = "dashboard:cards"
)

// DashboardCache is an optional read-model cache for the dashboard
// payloads. Implementations must treat a missing key as a miss, not an
// error.
type DashboardCache interface {
	// Get unmarshals the cached value for key into dest and reports
	// whether the key was present.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key with the cache's TTL.
	Set(ctx context.Context, key string, value any) error

	// Invalidate removes the given keys.
	Invalidate(ctx context.Context, keys ...string) error
}
