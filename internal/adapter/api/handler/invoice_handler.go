package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/user/invoicing-dashboard/internal/domain"
	"github.com/user/invoicing-dashboard/internal/usecase"
)

// InvoiceHandler handles the invoice listing and write endpoints.
type InvoiceHandler struct {
	invoices *usecase.InvoiceService
	logger   *slog.Logger
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoices *usecase.InvoiceService, logger *slog.Logger) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, logger: logger}
}

// List serves GET /invoices?query=&page=. The page parameter is 1-based
// and defaults to 1.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		page = 1
	}

	invoices, err := h.invoices.Filtered(r.Context(), query, page)
	if err != nil {
		writeError(w, err)
		return
	}
	if invoices == nil {
		invoices = []domain.InvoiceWithCustomer{}
	}
	writeJSON(w, http.StatusOK, invoices)
}

// Pages serves GET /invoices/pages?query=.
func (h *InvoiceHandler) Pages(w http.ResponseWriter, r *http.Request) {
	totalPages, err := h.invoices.TotalPages(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"total_pages": totalPages})
}

// Get serves GET /invoices/{id}.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, &domain.ValidationError{Fields: domain.FieldErrors{"id": "must be a valid UUID"}})
		return
	}

	form, err := h.invoices.ByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

// Create serves POST /invoices with a urlencoded form body.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := formValues(r)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := h.invoices.Create(r.Context(), form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// Update serves PUT /invoices/{id}. The path id is authoritative; the
// record id is immutable.
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	form, err := formValues(r)
	if err != nil {
		writeError(w, err)
		return
	}
	form["id"] = r.PathValue("id")

	if err := h.invoices.Update(r.Context(), form); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": form["id"]})
}

// Delete serves DELETE /invoices/{id}.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	form := map[string]string{"id": r.PathValue("id")}

	if err := h.invoices.Delete(r.Context(), form); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
