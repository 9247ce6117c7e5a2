package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/user/invoicing-dashboard/internal/domain"
	"github.com/user/invoicing-dashboard/internal/domain/mocks"
)

func TestCustomerService_Filtered(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Formats Totals", func(t *testing.T) {
		repo := &mocks.MockCustomerRepository{FilteredResult: []domain.CustomerSummaryRow{
			{
				ID:           uuid.New(),
				Name:         "Ada Lovelace",
				Email:        "ada@example.com",
				InvoiceCount: 3,
				TotalPending: 125000,
				TotalPaid:    4999,
			},
		}}
		svc := NewCustomerService(repo, logger)

		got, err := svc.Filtered(context.Background(), "ada")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if repo.FilteredQuery != "ada" {
			t.Errorf("expected query to pass through, got %q", repo.FilteredQuery)
		}
		if got[0].TotalPending != "$1,250.00" {
			t.Errorf("expected $1,250.00 pending, got %q", got[0].TotalPending)
		}
		if got[0].TotalPaid != "$49.99" {
			t.Errorf("expected $49.99 paid, got %q", got[0].TotalPaid)
		}
		if got[0].InvoiceCount != 3 {
			t.Errorf("expected invoice count 3, got %d", got[0].InvoiceCount)
		}
	})

	t.Run("Customer Without Invoices", func(t *testing.T) {
		repo := &mocks.MockCustomerRepository{FilteredResult: []domain.CustomerSummaryRow{
			{ID: uuid.New(), Name: "New Customer", Email: "new@example.com"},
		}}
		svc := NewCustomerService(repo, logger)

		got, err := svc.Filtered(context.Background(), "new")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got[0].TotalPending != "$0.00" || got[0].TotalPaid != "$0.00" {
			t.Errorf("expected zero totals, got %+v", got[0])
		}
	})
}

func TestCustomerService_All(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := &mocks.MockCustomerRepository{AllResult: []domain.CustomerField{
		{ID: uuid.New(), Name: "Ada"},
		{ID: uuid.New(), Name: "Lee"},
	}}
	svc := NewCustomerService(repo, logger)

	got, err := svc.All(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 customers, got %d", len(got))
	}
}
