package handler

import (
	"log/slog"
	"net/http"

	"github.com/user/invoicing-dashboard/internal/domain"
	"github.com/user/invoicing-dashboard/internal/usecase"
)

// DashboardHandler serves the overview page's read models.
type DashboardHandler struct {
	dashboard *usecase.DashboardService
	logger    *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboard *usecase.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, logger: logger}
}

// Revenue serves GET /dashboard/revenue.
func (h *DashboardHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.dashboard.Revenue(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if snapshots == nil {
		snapshots = []domain.RevenueSnapshot{}
	}
	writeJSON(w, http.StatusOK, snapshots)
}

// LatestInvoices serves GET /dashboard/latest-invoices.
func (h *DashboardHandler) LatestInvoices(w http.ResponseWriter, r *http.Request) {
	latest, err := h.dashboard.LatestInvoices(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if latest == nil {
		latest = []domain.LatestInvoice{}
	}
	writeJSON(w, http.StatusOK, latest)
}

// Cards serves GET /dashboard/cards.
func (h *DashboardHandler) Cards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.dashboard.CardData(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}
