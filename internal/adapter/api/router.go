package api

import (
	"log/slog"
	"net/http"

	"github.com/user/invoicing-dashboard/internal/adapter/api/handler"
	"github.com/user/invoicing-dashboard/internal/adapter/api/middleware"
	"github.com/user/invoicing-dashboard/internal/adapter/metrics"
	"github.com/user/invoicing-dashboard/internal/pkg/config"
	"github.com/user/invoicing-dashboard/internal/usecase"
)

// NewRouter creates and configures the main HTTP router for the dashboard
// service.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
	dashboard *usecase.DashboardService,
	invoices *usecase.InvoiceService,
	customers *usecase.CustomerService,
	auth *usecase.AuthService,
) http.Handler {
	mux := http.NewServeMux()

	dashboardHandler := handler.NewDashboardHandler(dashboard, logger)
	invoiceHandler := handler.NewInvoiceHandler(invoices, logger)
	customerHandler := handler.NewCustomerHandler(customers, logger)
	authHandler := handler.NewAuthHandler(auth, logger)

	mux.HandleFunc("GET /dashboard/revenue", dashboardHandler.Revenue)
	mux.HandleFunc("GET /dashboard/latest-invoices", dashboardHandler.LatestInvoices)
	mux.HandleFunc("GET /dashboard/cards", dashboardHandler.Cards)

	mux.HandleFunc("GET /invoices", invoiceHandler.List)
	mux.HandleFunc("GET /invoices/pages", invoiceHandler.Pages)
	mux.HandleFunc("GET /invoices/{id}", invoiceHandler.Get)
	mux.HandleFunc("POST /invoices", invoiceHandler.Create)
	mux.HandleFunc("PUT /invoices/{id}", invoiceHandler.Update)
	mux.HandleFunc("DELETE /invoices/{id}", invoiceHandler.Delete)

	mux.HandleFunc("GET /customers", customerHandler.List)
	mux.HandleFunc("GET /customers/summary", customerHandler.Summary)

	mux.HandleFunc("POST /login", authHandler.Login)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	var h http.Handler = mux
	h = middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)(h)
	h = middleware.Logging(logger, m)(h)
	return h
}
