package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/user/invoicing-dashboard/internal/domain"
	"github.com/user/invoicing-dashboard/internal/domain/mocks"
	"github.com/user/invoicing-dashboard/internal/usecase"
)

func newInvoiceMux(repo *mocks.MockInvoiceRepository, cache *mocks.MockDashboardCache) *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var c domain.DashboardCache
	if cache != nil {
		c = cache
	}
	h := NewInvoiceHandler(usecase.NewInvoiceService(repo, c, logger), logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /invoices", h.List)
	mux.HandleFunc("GET /invoices/pages", h.Pages)
	mux.HandleFunc("GET /invoices/{id}", h.Get)
	mux.HandleFunc("POST /invoices", h.Create)
	mux.HandleFunc("PUT /invoices/{id}", h.Update)
	mux.HandleFunc("DELETE /invoices/{id}", h.Delete)
	return mux
}

func postForm(mux *http.ServeMux, method, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestInvoiceHandler_Create(t *testing.T) {
	customerID := uuid.New()

	t.Run("valid form creates invoice and invalidates cache", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{}
		cache := &mocks.MockDashboardCache{}
		mux := newInvoiceMux(repo, cache)

		rec := postForm(mux, http.MethodPost, "/invoices", url.Values{
			"customerId": {customerID.String()},
			"amount":     {"49.99"},
			"status":     {"pending"},
		})

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d (%s)", http.StatusCreated, rec.Code, rec.Body.String())
		}

		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if _, err := uuid.Parse(body["id"]); err != nil {
			t.Errorf("expected a valid uuid in response, got %q", body["id"])
		}

		if repo.InsertedInvoice == nil {
			t.Fatal("expected invoice to be stored")
		}
		if repo.InsertedInvoice.Amount != 4999 {
			t.Errorf("expected stored amount 4999 cents, got %d", repo.InsertedInvoice.Amount)
		}
		if len(cache.InvalidatedKeys) != 3 {
			t.Errorf("expected 3 invalidated cache keys, got %v", cache.InvalidatedKeys)
		}
	})

	t.Run("invalid form returns 422 with field errors", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{}
		mux := newInvoiceMux(repo, nil)

		rec := postForm(mux, http.MethodPost, "/invoices", url.Values{
			"customerId": {customerID.String()},
			"amount":     {"-5"},
			"status":     {"pending"},
		})

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, rec.Code)
		}

		var body struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if _, ok := body.Fields["amount"]; !ok {
			t.Errorf("expected an amount field error, got %v", body.Fields)
		}
		if repo.InsertedInvoice != nil {
			t.Error("expected no invoice to be stored on validation failure")
		}
	})
}

func TestInvoiceHandler_Get(t *testing.T) {
	t.Run("unknown id returns 404", func(t *testing.T) {
		mux := newInvoiceMux(&mocks.MockInvoiceRepository{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/invoices/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
		}
	})

	t.Run("malformed id returns 422", func(t *testing.T) {
		mux := newInvoiceMux(&mocks.MockInvoiceRepository{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/invoices/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, rec.Code)
		}
	})

	t.Run("known id returns the edit form amount in major units", func(t *testing.T) {
		id := uuid.New()
		repo := &mocks.MockInvoiceRepository{
			FindResult: &domain.Invoice{ID: id, CustomerID: uuid.New(), Amount: 4999, Status: domain.InvoiceStatusPaid},
		}
		mux := newInvoiceMux(repo, nil)

		req := httptest.NewRequest(http.MethodGet, "/invoices/"+id.String(), nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
		var form domain.InvoiceForm
		if err := json.Unmarshal(rec.Body.Bytes(), &form); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if form.Amount != 49.99 {
			t.Errorf("expected amount 49.99, got %v", form.Amount)
		}
	})
}

func TestInvoiceHandler_List(t *testing.T) {
	t.Run("page parameter maps to the right offset", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{}
		mux := newInvoiceMux(repo, nil)

		req := httptest.NewRequest(http.MethodGet, "/invoices?query=lee&page=3", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
		if repo.FilteredQuery != "lee" {
			t.Errorf("expected query %q, got %q", "lee", repo.FilteredQuery)
		}
		if repo.FilteredOffset != 12 {
			t.Errorf("expected offset 12 for page 3, got %d", repo.FilteredOffset)
		}
		if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
			t.Errorf("expected empty array body, got %q", body)
		}
	})
}

func TestInvoiceHandler_Delete(t *testing.T) {
	t.Run("existing invoice returns 204", func(t *testing.T) {
		id := uuid.New()
		repo := &mocks.MockInvoiceRepository{}
		mux := newInvoiceMux(repo, nil)

		req := httptest.NewRequest(http.MethodDelete, "/invoices/"+id.String(), nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
		}
		if repo.DeletedID != id {
			t.Errorf("expected deleted id %s, got %s", id, repo.DeletedID)
		}
	})

	t.Run("missing invoice returns 404", func(t *testing.T) {
		id := uuid.New()
		repo := &mocks.MockInvoiceRepository{
			DeleteErr: &domain.NotFoundError{Entity: "invoice", ID: id.String()},
		}
		mux := newInvoiceMux(repo, nil)

		req := httptest.NewRequest(http.MethodDelete, "/invoices/"+id.String(), nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
		}
	})
}

func TestInvoiceHandler_Update(t *testing.T) {
	t.Run("path id overrides the form", func(t *testing.T) {
		id := uuid.New()
		customerID := uuid.New()
		repo := &mocks.MockInvoiceRepository{}
		mux := newInvoiceMux(repo, nil)

		rec := postForm(mux, http.MethodPut, "/invoices/"+id.String(), url.Values{
			"id":         {uuid.NewString()},
			"customerId": {customerID.String()},
			"amount":     {"12.50"},
			"status":     {"paid"},
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d (%s)", http.StatusOK, rec.Code, rec.Body.String())
		}
		if repo.UpdatedInvoice == nil {
			t.Fatal("expected invoice to be updated")
		}
		if repo.UpdatedInvoice.ID != id {
			t.Errorf("expected update id %s from the path, got %s", id, repo.UpdatedInvoice.ID)
		}
		if repo.UpdatedInvoice.Amount != 1250 {
			t.Errorf("expected amount 1250 cents, got %d", repo.UpdatedInvoice.Amount)
		}
	})
}
