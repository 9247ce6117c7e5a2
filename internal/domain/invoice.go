package domain

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus is the two-value payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Valid reports whether s is one of the two persisted status values.
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice is the canonical stored invoice row. Amount is held in minor
// currency units (cents) so no floating point ever touches storage.
type Invoice struct {
	ID         uuid.UUID     `json:"id"`
	CustomerID uuid.UUID     `json:"customer_id"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	Date       time.Time     `json:"date"`
}

// NewInvoice is a validated invoice creation record. The id and date are
// assigned at save time, never by the caller.
type NewInvoice struct {
	CustomerID uuid.UUID
	Amount     int64
	Status     InvoiceStatus
}

// InvoiceUpdate is a validated update to an existing invoice. The id is
// immutable; customer, amount, and status may change.
type InvoiceUpdate struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Amount     int64
	Status     InvoiceStatus
}

// InvoiceWithCustomer is an invoice row joined with its customer's display
// fields, as listed on the invoices table page.
type InvoiceWithCustomer struct {
	ID               uuid.UUID     `json:"id"`
	Amount           int64         `json:"amount"`
	Date             time.Time     `json:"date"`
	Status           InvoiceStatus `json:"status"`
	CustomerName     string        `json:"name"`
	CustomerEmail    string        `json:"email"`
	CustomerImageURL string        `json:"image_url"`
}

// LatestInvoice is a recent invoice prepared for the dashboard card, with
// the amount already rendered as a display currency string.
type LatestInvoice struct {
	ID               uuid.UUID `json:"id"`
	Amount           string    `json:"amount"`
	CustomerName     string    `json:"name"`
	CustomerEmail    string    `json:"email"`
	CustomerImageURL string    `json:"image_url"`
}

// InvoiceForm is a single invoice prepared for the edit form, with the
// amount converted back to major units for display.
type InvoiceForm struct {
	ID         uuid.UUID     `json:"id"`
	CustomerID uuid.UUID     `json:"customer_id"`
	Amount     float64       `json:"amount"`
	Status     InvoiceStatus `json:"status"`
}

// CardData holds the four dashboard summary aggregates. The totals are in
// minor units; missing aggregates are zero, never null.
type CardData struct {
	CustomerCount int64 `json:"customer_count"`
	InvoiceCount  int64 `json:"invoice_count"`
	TotalPaid     int64 `json:"total_paid"`
	TotalPending  int64 `json:"total_pending"`
}
