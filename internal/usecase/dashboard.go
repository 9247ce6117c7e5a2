package usecase

import (
	"context"
	"log/slog"

	"github.com/user/invoicing-dashboard/internal/adapter/metrics"
	"github.com/user/invoicing-dashboard/internal/domain"
)

// latestInvoiceCount is how many recent invoices the overview card shows.
const latestInvoiceCount = 5

// DashboardService serves the overview page's read models: the revenue
// chart, the latest invoices card, and the summary aggregates. Each read
// goes through the optional view cache first.
type DashboardService struct {
	repo     domain.DashboardRepository
	invoices domain.InvoiceRepository
	cache    domain.DashboardCache
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewDashboardService creates a new DashboardService. The cache and
// metrics handles are optional; pass nil to disable them.
func NewDashboardService(
	repo domain.DashboardRepository,
	invoices domain.InvoiceRepository,
	cache domain.DashboardCache,
	logger *slog.Logger,
	m *metrics.Metrics,
) *DashboardService {
	return &DashboardService{
		repo:     repo,
		invoices: invoices,
		cache:    cache,
		logger:   logger,
		metrics:  m,
	}
}

// Revenue returns the monthly revenue snapshots for the chart.
func (s *DashboardService) Revenue(ctx context.Context) ([]domain.RevenueSnapshot, error) {
	var cached []domain.RevenueSnapshot
	if s.cacheGet(ctx, domain.CacheKeyRevenue, &cached) {
		return cached, nil
	}

	snapshots, err := s.repo.RevenueSnapshots(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, domain.CacheKeyRevenue, snapshots)
	return snapshots, nil
}

// LatestInvoices returns the five most recent invoices with their amounts
// rendered as display currency strings.
func (s *DashboardService) LatestInvoices(ctx context.Context) ([]domain.LatestInvoice, error) {
	var cached []domain.LatestInvoice
	if s.cacheGet(ctx, domain.CacheKeyLatestInvoices, &cached) {
		return cached, nil
	}

	rows, err := s.invoices.Latest(ctx, latestInvoiceCount)
	if err != nil {
		return nil, err
	}

	latest := make([]domain.LatestInvoice, 0, len(rows))
	for _, row := range rows {
		latest = append(latest, domain.LatestInvoice{
			ID:               row.ID,
			Amount:           domain.FormatCurrency(row.Amount),
			CustomerName:     row.CustomerName,
			CustomerEmail:    row.CustomerEmail,
			CustomerImageURL: row.CustomerImageURL,
		})
	}
	s.cacheSet(ctx, domain.CacheKeyLatestInvoices, latest)
	return latest, nil
}

// CardData returns the four dashboard aggregates. Empty tables produce
// zero values, never an error.
func (s *DashboardService) CardData(ctx context.Context) (*domain.CardData, error) {
	var cached domain.CardData
	if s.cacheGet(ctx, domain.CacheKeyCards, &cached) {
		return &cached, nil
	}

	cards, err := s.repo.CardData(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, domain.CacheKeyCards, cards)
	return cards, nil
}

// cacheGet reads a dashboard payload from the cache. A cache failure is a
// miss, never a request failure.
func (s *DashboardService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Warn("dashboard cache read failed", "key", key, "error", err)
		return false
	}
	if s.metrics != nil {
		if ok {
			s.metrics.CacheHits.Inc()
		} else {
			s.metrics.CacheMisses.Inc()
		}
	}
	return ok
}

func (s *DashboardService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn("dashboard cache write failed", "key", key, "error", err)
	}
}
