package handler

import (
	"log/slog"
	"net/http"

	"github.com/user/invoicing-dashboard/internal/domain"
	"github.com/user/invoicing-dashboard/internal/usecase"
)

// CustomerHandler serves the customer listing endpoints.
type CustomerHandler struct {
	customers *usecase.CustomerService
	logger    *slog.Logger
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customers *usecase.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{customers: customers, logger: logger}
}

// List serves GET /customers: every customer's id and name, for select
// inputs.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.All(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if customers == nil {
		customers = []domain.CustomerField{}
	}
	writeJSON(w, http.StatusOK, customers)
}

// Summary serves GET /customers/summary?query=: filtered customers with
// per-customer invoice aggregates.
func (h *CustomerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.customers.Filtered(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, err)
		return
	}
	if summaries == nil {
		summaries = []domain.CustomerSummary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}
