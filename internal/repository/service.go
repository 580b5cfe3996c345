package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adverra/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ServiceRepository handles database operations for agency services.
// The embedded package list is stored as JSONB.
type ServiceRepository struct {
	db *pgxpool.Pool
}

// NewServiceRepository creates a new ServiceRepository.
func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// Create inserts a new service.
func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	pkgs, err := json.Marshal(s.Packages)
	if err != nil {
		return fmt.Errorf("failed to marshal service packages: %w", err)
	}

	query := `
		INSERT INTO services (id, title, description, packages, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.db.Exec(ctx, query, s.ID, s.Title, s.Description, pkgs, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// FindByID returns a service by ID, or nil if absent.
func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*domain.Service, error) {
	query := `SELECT id, title, description, packages, created_at FROM services WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)

	s, err := scanService(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find service: %w", err)
	}
	return s, nil
}

// ListAll returns all services ordered by title.
func (r *ServiceRepository) ListAll(ctx context.Context) ([]*domain.Service, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, description, packages, created_at FROM services ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var services []*domain.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}

// Update overwrites a service and its embedded package list.
func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	pkgs, err := json.Marshal(s.Packages)
	if err != nil {
		return fmt.Errorf("failed to marshal service packages: %w", err)
	}

	query := `UPDATE services SET title = $1, description = $2, packages = $3 WHERE id = $4`
	_, err = r.db.Exec(ctx, query, s.Title, s.Description, pkgs, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

// Delete removes a service by ID.
func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

func scanService(row rowScanner) (*domain.Service, error) {
	var s domain.Service
	var pkgs []byte
	if err := row.Scan(&s.ID, &s.Title, &s.Description, &pkgs, &s.CreatedAt); err != nil {
		return nil, err
	}
	if len(pkgs) > 0 {
		if err := json.Unmarshal(pkgs, &s.Packages); err != nil {
			return nil, fmt.Errorf("failed to unmarshal service packages: %w", err)
		}
	}
	return &s, nil
}
