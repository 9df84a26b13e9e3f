// Package mocks provides in-memory implementations of the application ports.
package mocks

import (
	"context"
	"sync"

	"github.com/DanielPopoola/moneta-checkout/internal/application"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
	"github.com/shopspring/decimal"
)

// MockOrderRepository
type MockOrderRepository struct {
	mu     sync.RWMutex
	orders map[int64]*domain.Order

	FindByIDFn func(ctx context.Context, id int64) (*domain.Order, error)
}

func NewMockOrderRepository(orders ...*domain.Order) *MockOrderRepository {
	m := &MockOrderRepository{orders: make(map[int64]*domain.Order)}
	for _, o := range orders {
		m.orders[o.ID] = o
	}
	return m
}

func (m *MockOrderRepository) Put(order *domain.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.ID] = order
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return nil, application.ErrOrderNotFound
}

// MockCurrencyRepository
type MockCurrencyRepository struct {
	mu         sync.RWMutex
	currencies map[int64]*domain.Currency

	FindByIDFn func(ctx context.Context, id int64) (*domain.Currency, error)
}

func NewMockCurrencyRepository(currencies ...*domain.Currency) *MockCurrencyRepository {
	m := &MockCurrencyRepository{currencies: make(map[int64]*domain.Currency)}
	for _, c := range currencies {
		m.currencies[c.ID] = c
	}
	return m
}

func (m *MockCurrencyRepository) FindByID(ctx context.Context, id int64) (*domain.Currency, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.currencies[id]; ok {
		return c, nil
	}
	return nil, application.ErrCurrencyNotFound
}

// MockSettingsRepository
type MockSettingsRepository struct {
	mu       sync.RWMutex
	settings *domain.GatewaySettings

	GetFn    func(ctx context.Context) (*domain.GatewaySettings, error)
	SaveFn   func(ctx context.Context, settings *domain.GatewaySettings) error
	DeleteFn func(ctx context.Context) error
}

// NewMockSettingsRepository returns a repository holding settings, or an
// uninstalled one when settings is nil.
func NewMockSettingsRepository(settings *domain.GatewaySettings) *MockSettingsRepository {
	return &MockSettingsRepository{settings: settings}
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*domain.GatewaySettings, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return nil, application.ErrSettingsNotFound
	}
	s := *m.settings
	return &s, nil
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *domain.GatewaySettings) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, settings)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := *settings
	m.settings = &s
	return nil
}

func (m *MockSettingsRepository) Delete(ctx context.Context) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings == nil {
		return application.ErrSettingsNotFound
	}
	m.settings = nil
	return nil
}

// MockSubtotalCalculator counts calls so tests can check the cart was priced.
type MockSubtotalCalculator struct {
	mu    sync.Mutex
	Calls int

	SubtotalFn func(ctx context.Context, cart domain.Cart) (decimal.Decimal, error)
}

func (m *MockSubtotalCalculator) Subtotal(ctx context.Context, cart domain.Cart) (decimal.Decimal, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.SubtotalFn != nil {
		return m.SubtotalFn(ctx, cart)
	}
	total := decimal.Zero
	for _, item := range cart {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}
