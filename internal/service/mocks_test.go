package service

import (
	"context"
	"sync"

	"github.com/adverra/backend/internal/domain"
)

// memCartStore implements repository.CartStore in memory for testing.
type memCartStore struct {
	mu      sync.RWMutex
	carts   map[string]*domain.Cart
	deleted []string
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[string]*domain.Cart)}
}

func (m *memCartStore) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if cart, ok := m.carts[sessionID]; ok {
		cp := *cart
		cp.Items = append([]domain.CartItem(nil), cart.Items...)
		return &cp, nil
	}
	return &domain.Cart{SessionID: sessionID}, nil
}

func (m *memCartStore) Set(_ context.Context, cart *domain.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *cart
	cp.Items = append([]domain.CartItem(nil), cart.Items...)
	m.carts[cart.SessionID] = &cp
	return nil
}

func (m *memCartStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
	m.deleted = append(m.deleted, sessionID)
	return nil
}

// mockTxStore implements TransactionStore for testing. CreateErrFor maps
// a referenced catalog id (domain/hosting/service) to an injected error.
type mockTxStore struct {
	Transactions []*domain.Transaction
	Created      []*domain.Transaction
	CreateErrFor map[string]error
	StatusSet    map[string]string
}

func (m *mockTxStore) refID(t *domain.Transaction) string {
	switch {
	case t.DomainID != nil:
		return *t.DomainID
	case t.HostingPackageID != nil:
		return *t.HostingPackageID
	case t.ServiceID != nil:
		return *t.ServiceID
	}
	return ""
}

func (m *mockTxStore) Create(_ context.Context, t *domain.Transaction) error {
	if err, ok := m.CreateErrFor[m.refID(t)]; ok {
		return err
	}
	m.Created = append(m.Created, t)
	return nil
}

func (m *mockTxStore) FindByID(_ context.Context, id string) (*domain.Transaction, error) {
	for _, t := range m.Transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (m *mockTxStore) FindAllByUser(_ context.Context, userID string) ([]*domain.Transaction, error) {
	var out []*domain.Transaction
	for _, t := range m.Transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTxStore) ListAll(_ context.Context) ([]*domain.Transaction, error) {
	return m.Transactions, nil
}

func (m *mockTxStore) UpdateStatus(_ context.Context, id, status string) error {
	if m.StatusSet == nil {
		m.StatusSet = make(map[string]string)
	}
	m.StatusSet[id] = status
	return nil
}

func (m *mockTxStore) Delete(_ context.Context, _ string) error {
	return nil
}

// mockDomainStore implements DomainStore for testing.
type mockDomainStore struct {
	Domains []*domain.Domain
}

func (m *mockDomainStore) Create(_ context.Context, d *domain.Domain) error {
	m.Domains = append(m.Domains, d)
	return nil
}

func (m *mockDomainStore) FindByID(_ context.Context, id string) (*domain.Domain, error) {
	for _, d := range m.Domains {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (m *mockDomainStore) FindAllByUser(_ context.Context, userID string) ([]*domain.Domain, error) {
	var out []*domain.Domain
	for _, d := range m.Domains {
		if d.UserID != nil && *d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDomainStore) ListAll(_ context.Context) ([]*domain.Domain, error) {
	return m.Domains, nil
}

func (m *mockDomainStore) Update(_ context.Context, _ *domain.Domain) error {
	return nil
}

func (m *mockDomainStore) Delete(_ context.Context, _ string) error {
	return nil
}

// mockHostingStore implements HostingStore for testing.
type mockHostingStore struct {
	Packages []*domain.HostingPackage
}

func (m *mockHostingStore) Create(_ context.Context, p *domain.HostingPackage) error {
	m.Packages = append(m.Packages, p)
	return nil
}

func (m *mockHostingStore) FindByID(_ context.Context, id string) (*domain.HostingPackage, error) {
	for _, p := range m.Packages {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockHostingStore) ListAll(_ context.Context) ([]*domain.HostingPackage, error) {
	return m.Packages, nil
}

func (m *mockHostingStore) Update(_ context.Context, _ *domain.HostingPackage) error {
	return nil
}

func (m *mockHostingStore) Delete(_ context.Context, _ string) error {
	return nil
}

// mockServiceStore implements ServiceStore for testing.
type mockServiceStore struct {
	Services []*domain.Service
}

func (m *mockServiceStore) Create(_ context.Context, s *domain.Service) error {
	m.Services = append(m.Services, s)
	return nil
}

func (m *mockServiceStore) FindByID(_ context.Context, id string) (*domain.Service, error) {
	for _, s := range m.Services {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (m *mockServiceStore) ListAll(_ context.Context) ([]*domain.Service, error) {
	return m.Services, nil
}

func (m *mockServiceStore) Update(_ context.Context, _ *domain.Service) error {
	return nil
}

func (m *mockServiceStore) Delete(_ context.Context, _ string) error {
	return nil
}

// recordingPublisher implements EventPublisher and counts emissions.
type recordingPublisher struct {
	CreatedEvents []string
	StatusEvents  []string
}

func (p *recordingPublisher) TransactionCreated(_ context.Context, t *domain.Transaction) {
	p.CreatedEvents = append(p.CreatedEvents, t.ID)
}

func (p *recordingPublisher) TransactionStatusChanged(_ context.Context, t *domain.Transaction) {
	p.StatusEvents = append(p.StatusEvents, t.ID)
}
