package service

import (
	"context"

	"github.com/adverra/backend/internal/domain"
	"github.com/adverra/backend/internal/repository"
)

// Store interfaces consumed by the services. The pgx repositories satisfy
// them; tests substitute in-memory fakes.

type TransactionStore interface {
	Create(ctx context.Context, t *domain.Transaction) error
	FindByID(ctx context.Context, id string) (*domain.Transaction, error)
	FindAllByUser(ctx context.Context, userID string) ([]*domain.Transaction, error)
	ListAll(ctx context.Context) ([]*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type DomainStore interface {
	Create(ctx context.Context, d *domain.Domain) error
	FindByID(ctx context.Context, id string) (*domain.Domain, error)
	FindAllByUser(ctx context.Context, userID string) ([]*domain.Domain, error)
	ListAll(ctx context.Context) ([]*domain.Domain, error)
	Update(ctx context.Context, d *domain.Domain) error
	Delete(ctx context.Context, id string) error
}

type HostingStore interface {
	Create(ctx context.Context, p *domain.HostingPackage) error
	FindByID(ctx context.Context, id string) (*domain.HostingPackage, error)
	ListAll(ctx context.Context) ([]*domain.HostingPackage, error)
	Update(ctx context.Context, p *domain.HostingPackage) error
	Delete(ctx context.Context, id string) error
}

type ServiceStore interface {
	Create(ctx context.Context, s *domain.Service) error
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	ListAll(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id string) error
}

// EventPublisher emits transaction lifecycle events. Publishing is best
// effort and never sits on the request critical path.
type EventPublisher interface {
	TransactionCreated(ctx context.Context, t *domain.Transaction)
	TransactionStatusChanged(ctx context.Context, t *domain.Transaction)
}

var (
	_ TransactionStore = (*repository.TransactionRepository)(nil)
	_ DomainStore      = (*repository.DomainRepository)(nil)
	_ HostingStore     = (*repository.HostingRepository)(nil)
	_ ServiceStore     = (*repository.ServiceRepository)(nil)
)
