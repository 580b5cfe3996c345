package repository

import (
	"context"
	"fmt"

	"github.com/adverra/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HostingRepository handles database operations for hosting packages.
type HostingRepository struct {
	db *pgxpool.Pool
}

// NewHostingRepository creates a new HostingRepository.
func NewHostingRepository(db *pgxpool.Pool) *HostingRepository {
	return &HostingRepository{db: db}
}

// Create inserts a new hosting package.
func (r *HostingRepository) Create(ctx context.Context, p *domain.HostingPackage) error {
	query := `
		INSERT INTO hosting_packages (id, name, price, renewal_price, features, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Price, p.RenewalPrice, p.Features, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create hosting package: %w", err)
	}
	return nil
}

// FindByID returns a hosting package by ID, or nil if absent.
func (r *HostingRepository) FindByID(ctx context.Context, id string) (*domain.HostingPackage, error) {
	query := `SELECT id, name, price, renewal_price, features, created_at FROM hosting_packages WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)

	var p domain.HostingPackage
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.RenewalPrice, &p.Features, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find hosting package: %w", err)
	}
	return &p, nil
}

// ListAll returns all hosting packages ordered by price.
func (r *HostingRepository) ListAll(ctx context.Context) ([]*domain.HostingPackage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, price, renewal_price, features, created_at FROM hosting_packages ORDER BY price`)
	if err != nil {
		return nil, fmt.Errorf("failed to list hosting packages: %w", err)
	}
	defer rows.Close()

	var pkgs []*domain.HostingPackage
	for rows.Next() {
		var p domain.HostingPackage
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.RenewalPrice, &p.Features, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan hosting package: %w", err)
		}
		pkgs = append(pkgs, &p)
	}
	return pkgs, nil
}

// Update overwrites a hosting package.
func (r *HostingRepository) Update(ctx context.Context, p *domain.HostingPackage) error {
	query := `
		UPDATE hosting_packages SET name = $1, price = $2, renewal_price = $3, features = $4
		WHERE id = $5
	`
	_, err := r.db.Exec(ctx, query, p.Name, p.Price, p.RenewalPrice, p.Features, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update hosting package: %w", err)
	}
	return nil
}

// Delete removes a hosting package by ID.
func (r *HostingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM hosting_packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hosting package: %w", err)
	}
	return nil
}
