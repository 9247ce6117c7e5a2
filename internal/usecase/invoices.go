package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/user/invoicing-dashboard/internal/domain"
	"github.com/user/invoicing-dashboard/internal/validation"
)

// itemsPerPage is the fixed page size of the invoices table.
const itemsPerPage = 6

// InvoiceService handles listing, lookup, and the validated write path for
// invoices. Every successful write invalidates the dashboard view cache,
// mirroring the list revalidation the UI expects after a mutation.
type InvoiceService struct {
	repo   domain.InvoiceRepository
	cache  domain.DashboardCache
	logger *slog.Logger
}

// NewInvoiceService creates a new InvoiceService. The cache is optional;
// pass nil to disable invalidation.
func NewInvoiceService(repo domain.InvoiceRepository, cache domain.DashboardCache, logger *slog.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, cache: cache, logger: logger}
}

// Filtered returns one page of invoices matching the free-text query.
// Pages are 1-based; anything below 1 is treated as the first page.
func (s *InvoiceService) Filtered(ctx context.Context, query string, page int) ([]domain.InvoiceWithCustomer, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * itemsPerPage
	return s.repo.Filtered(ctx, query, itemsPerPage, offset)
}

// TotalPages returns the page count for the query's result set, as a
// ceiling division of the matching row count by the page size.
func (s *InvoiceService) TotalPages(ctx context.Context, query string) (int, error) {
	count, err := s.repo.CountFiltered(ctx, query)
	if err != nil {
		return 0, err
	}
	return int((count + itemsPerPage - 1) / itemsPerPage), nil
}

// ByID returns a single invoice prepared for the edit form, with the
// amount converted back to major units.
func (s *InvoiceService) ByID(ctx context.Context, id uuid.UUID) (*domain.InvoiceForm, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.InvoiceForm{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     domain.FromCents(inv.Amount),
		Status:     inv.Status,
	}, nil
}

// Create validates the submitted form and stores a new invoice. The id and
// date are assigned here, never by the caller.
func (s *InvoiceService) Create(ctx context.Context, form map[string]string) (uuid.UUID, error) {
	record, err := validation.ParseCreateInvoice(form)
	if err != nil {
		return uuid.Nil, err
	}

	inv := domain.Invoice{
		ID:         uuid.New(),
		CustomerID: record.CustomerID,
		Amount:     record.Amount,
		Status:     record.Status,
		Date:       time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, inv); err != nil {
		return uuid.Nil, err
	}

	s.invalidateDashboard(ctx)
	return inv.ID, nil
}

// Update validates the submitted form and rewrites the matching invoice.
// A non-matching id fails with NotFoundError.
func (s *InvoiceService) Update(ctx context.Context, form map[string]string) error {
	record, err := validation.ParseUpdateInvoice(form)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, record); err != nil {
		return err
	}

	s.invalidateDashboard(ctx)
	return nil
}

// Delete validates the submitted form and removes the matching invoice.
// A non-matching id fails with NotFoundError.
func (s *InvoiceService) Delete(ctx context.Context, form map[string]string) error {
	id, err := validation.ParseDeleteInvoice(form)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateDashboard(ctx)
	return nil
}

// invalidateDashboard drops the cached dashboard payloads after a write.
// A failed invalidation is logged but does not fail the write; the TTL
// bounds the staleness window.
func (s *InvoiceService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	err := s.cache.Invalidate(ctx,
		domain.CacheKeyRevenue,
		domain.CacheKeyLatestInvoices,
		domain.CacheKeyCards,
	)
	if err != nil {
		s.logger.Warn("dashboard cache invalidation failed", "error", err)
	}
}
