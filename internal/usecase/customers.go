package usecase

import (
	"context"
	"log/slog"

	"github.com/user/invoicing-dashboard/internal/domain"
)

// CustomerService serves the customer listings.
type CustomerService struct {
	repo   domain.CustomerRepository
	logger *slog.Logger
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo domain.CustomerRepository, logger *slog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

// All returns every customer's id and name for select inputs, ordered
// alphabetically.
func (s *CustomerService) All(ctx context.Context) ([]domain.CustomerField, error) {
	return s.repo.All(ctx)
}

// Filtered returns customers matching the query with their per-customer
// invoice count and totals, the totals rendered as currency strings.
func (s *CustomerService) Filtered(ctx context.Context, query string) ([]domain.CustomerSummary, error) {
	rows, err := s.repo.FilteredWithTotals(ctx, query)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.CustomerSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.CustomerSummary{
			ID:           row.ID,
			Name:         row.Name,
			Email:        row.Email,
			ImageURL:     row.ImageURL,
			InvoiceCount: row.InvoiceCount,
			TotalPending: domain.FormatCurrency(row.TotalPending),
			TotalPaid:    domain.FormatCurrency(row.TotalPaid),
		})
	}
	return summaries, nil
}
