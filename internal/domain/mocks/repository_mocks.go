package mocks

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/user/invoicing-dashboard/internal/domain"
)

// MockInvoiceRepository is a mock implementation of
// domain.InvoiceRepository for testing.
type MockInvoiceRepository struct {
	mu sync.Mutex

	LatestResult   []domain.InvoiceWithCustomer
	FilteredResult []domain.InvoiceWithCustomer
	CountResult    int64
	FindResult     *domain.Invoice

	LatestErr   error
	FilteredErr error
	CountErr    error
	FindErr     error
	InsertErr   error
	UpdateErr   error
	DeleteErr   error

	LatestLimit     int
	FilteredQuery   string
	FilteredLimit   int
	FilteredOffset  int
	CountQuery      string
	FoundID         uuid.UUID
	InsertedInvoice *domain.Invoice
	UpdatedInvoice  *domain.InvoiceUpdate
	DeletedID       uuid.UUID
}

func (m *MockInvoiceRepository) Latest(ctx context.Context, limit int) ([]domain.InvoiceWithCustomer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LatestLimit = limit
	if m.LatestErr != nil {
		return nil, m.LatestErr
	}
	return m.LatestResult, nil
}

func (m *MockInvoiceRepository) Filtered(ctx context.Context, query string, limit, offset int) ([]domain.InvoiceWithCustomer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FilteredQuery = query
	m.FilteredLimit = limit
	m.FilteredOffset = offset
	if m.FilteredErr != nil {
		return nil, m.FilteredErr
	}
	return m.FilteredResult, nil
}

func (m *MockInvoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CountQuery = query
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	return m.CountResult, nil
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FoundID = id
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	if m.FindResult == nil {
		return nil, &domain.NotFoundError{Entity: "invoice", ID: id.String()}
	}
	return m.FindResult, nil
}

func (m *MockInvoiceRepository) Insert(ctx context.Context, inv domain.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.InsertedInvoice = &inv
	return nil
}

func (m *MockInvoiceRepository) Update(ctx context.Context, upd domain.InvoiceUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.UpdatedInvoice = &upd
	return nil
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.DeletedID = id
	return nil
}

// MockCustomerRepository is a mock implementation of
// domain.CustomerRepository for testing.
type MockCustomerRepository struct {
	AllResult      []domain.CustomerField
	FilteredResult []domain.CustomerSummaryRow
	AllErr         error
	FilteredErr    error
	FilteredQuery  string
}

func (m *MockCustomerRepository) All(ctx context.Context) ([]domain.CustomerField, error) {
	if m.AllErr != nil {
		return nil, m.AllErr
	}
	return m.AllResult, nil
}

func (m *MockCustomerRepository) FilteredWithTotals(ctx context.Context, query string) ([]domain.CustomerSummaryRow, error) {
	m.FilteredQuery = query
	if m.FilteredErr != nil {
		return nil, m.FilteredErr
	}
	return m.FilteredResult, nil
}

// MockDashboardRepository is a mock implementation of
// domain.DashboardRepository for testing.
type MockDashboardRepository struct {
	RevenueResult []domain.RevenueSnapshot
	CardsResult   *domain.CardData
	RevenueErr    error
	CardsErr      error
	RevenueCalls  int
	CardsCalls    int
}

func (m *MockDashboardRepository) RevenueSnapshots(ctx context.Context) ([]domain.RevenueSnapshot, error) {
	m.RevenueCalls++
	if m.RevenueErr != nil {
		return nil, m.RevenueErr
	}
	return m.RevenueResult, nil
}

func (m *MockDashboardRepository) CardData(ctx context.Context) (*domain.CardData, error) {
	m.CardsCalls++
	if m.CardsErr != nil {
		return nil, m.CardsErr
	}
	if m.CardsResult == nil {
		return &domain.CardData{}, nil
	}
	return m.CardsResult, nil
}

// MockUserRepository is a mock implementation of domain.UserRepository for
// testing.
type MockUserRepository struct {
	User    *domain.User
	FindErr error
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	if m.User == nil || m.User.Email != email {
		return nil, &domain.NotFoundError{Entity: "user", ID: email}
	}
	return m.User, nil
}

// MockDashboardCache is an in-memory domain.DashboardCache for testing.
type MockDashboardCache struct {
	mu              sync.Mutex
	Entries         map[string][]byte
	GetErr          error
	SetErr          error
	InvalidateErr   error
	InvalidatedKeys []string
	SetKeys         []string
}

func (m *MockDashboardCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return false, m.GetErr
	}
	raw, ok := m.Entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *MockDashboardCache) Set(ctx context.Context, key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.Entries == nil {
		m.Entries = make(map[string][]byte)
	}
	m.Entries[key] = raw
	m.SetKeys = append(m.SetKeys, key)
	return nil
}

func (m *MockDashboardCache) Invalidate(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.InvalidateErr != nil {
		return m.InvalidateErr
	}
	for _, key := range keys {
		delete(m.Entries, key)
	}
	m.InvalidatedKeys = append(m.InvalidatedKeys, keys...)
	return nil
}
