// Package validation coerces untyped form submissions into typed invoice
// records. Parsing is strict: unknown fields are rejected, and every
// failure names the offending field so the form can highlight it.
package validation

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/user/invoicing-dashboard/internal/domain"
)

const (
	fieldID         = "id"
	fieldCustomerID = "customerId"
	fieldAmount     = "amount"
	fieldStatus     = "status"
)

var (
	createFields = map[string]bool{fieldCustomerID: true, fieldAmount: true, fieldStatus: true}
	updateFields = map[string]bool{fieldID: true, fieldCustomerID: true, fieldAmount: true, fieldStatus: true}
	deleteFields = map[string]bool{fieldID: true}
)

// ParseCreateInvoice validates a creation form. On success the returned
// record carries the amount already converted to minor units; that
// conversion happens here and nowhere else on the write path.
func ParseCreateInvoice(form map[string]string) (domain.NewInvoice, error) {
	fields := domain.FieldErrors{}
	rejectUnknown(form, createFields, fields)

	customerID := parseUUID(form, fieldCustomerID, fields)
	amount := parseAmount(form, fields)
	status := parseStatus(form, fields)

	if len(fields) > 0 {
		return domain.NewInvoice{}, &domain.ValidationError{Fields: fields}
	}
	return domain.NewInvoice{
		CustomerID: customerID,
		Amount:     amount,
		Status:     status,
	}, nil
}

// ParseUpdateInvoice validates an update form. It requires the existing
// record's id in addition to the creation fields; the id itself is
// immutable.
func ParseUpdateInvoice(form map[string]string) (domain.InvoiceUpdate, error) {
	fields := domain.FieldErrors{}
	rejectUnknown(form, updateFields, fields)

	id := parseUUID(form, fieldID, fields)
	customerID := parseUUID(form, fieldCustomerID, fields)
	amount := parseAmount(form, fields)
	status := parseStatus(form, fields)

	if len(fields) > 0 {
		return domain.InvoiceUpdate{}, &domain.ValidationError{Fields: fields}
	}
	return domain.InvoiceUpdate{
		ID:         id,
		CustomerID: customerID,
		Amount:     amount,
		Status:     status,
	}, nil
}

// ParseDeleteInvoice validates a deletion form, which carries only the id.
func ParseDeleteInvoice(form map[string]string) (uuid.UUID, error) {
	fields := domain.FieldErrors{}
	rejectUnknown(form, deleteFields, fields)

	id := parseUUID(form, fieldID, fields)

	if len(fields) > 0 {
		return uuid.Nil, &domain.ValidationError{Fields: fields}
	}
	return id, nil
}

func rejectUnknown(form map[string]string, allowed map[string]bool, fields domain.FieldErrors) {
	for name := range form {
		if !allowed[name] {
			fields[name] = "unknown field"
		}
	}
}

func parseUUID(form map[string]string, name string, fields domain.FieldErrors) uuid.UUID {
	raw, ok := form[name]
	if !ok {
		fields[name] = "is required"
		return uuid.Nil
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		fields[name] = "must be a valid UUID"
		return uuid.Nil
	}
	return id
}

func parseAmount(form map[string]string, fields domain.FieldErrors) int64 {
	raw, ok := form[fieldAmount]
	if !ok {
		fields[fieldAmount] = "is required"
		return 0
	}
	major, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		fields[fieldAmount] = "must be a number"
		return 0
	}
	if major.Sign() <= 0 {
		fields[fieldAmount] = "must be greater than 0"
		return 0
	}
	return domain.ToCents(major)
}

func parseStatus(form map[string]string, fields domain.FieldErrors) domain.InvoiceStatus {
	raw, ok := form[fieldStatus]
	if !ok {
		fields[fieldStatus] = "is required"
		return ""
	}
	status := domain.InvoiceStatus(strings.TrimSpace(raw))
	if !status.Valid() {
		fields[fieldStatus] = `must be either "pending" or "paid"`
		return ""
	}
	return status
}
