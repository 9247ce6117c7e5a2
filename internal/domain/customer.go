package domain

import "github.com/google/uuid"

// Customer is a stored customer row. Customers are immutable in this
// system; no create or edit operation is exposed for them.
type Customer struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
}

// CustomerField is the slim id/name pair used to populate select inputs.
type CustomerField struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CustomerSummaryRow is a customer left-joined with its invoices, with raw
// minor-unit aggregates as they come back from the store.
type CustomerSummaryRow struct {
	ID           uuid.UUID
	Name         string
	Email        string
	ImageURL     string
	InvoiceCount int64
	TotalPending int64
	TotalPaid    int64
}

// CustomerSummary is a CustomerSummaryRow prepared for display, with the
// pending and paid totals rendered as currency strings.
type CustomerSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ImageURL     string    `json:"image_url"`
	InvoiceCount int64     `json:"invoice_count"`
	TotalPending string    `json:"total_pending"`
	TotalPaid    string    `json:"total_paid"`
}
