package repository

import (
	"context"
	"fmt"

	appdomain "github.com/adverra/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const domainColumns = `id, name, user_id, status, registration_date, expiry_date, price, created_at`

// DomainRepository handles database operations for domain records.
type DomainRepository struct {
	db *pgxpool.Pool
}

// NewDomainRepository creates a new DomainRepository.
func NewDomainRepository(db *pgxpool.Pool) *DomainRepository {
	return &DomainRepository{db: db}
}

// Create inserts a new domain record.
func (r *DomainRepository) Create(ctx context.Context, d *appdomain.Domain) error {
	query := `
		INSERT INTO domains (` + domainColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		d.ID, d.Name, d.UserID, d.Status, d.RegistrationDate, d.ExpiryDate, d.Price, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create domain: %w", err)
	}
	return nil
}

// FindByID returns a domain by ID, or nil if absent.
func (r *DomainRepository) FindByID(ctx context.Context, id string) (*appdomain.Domain, error) {
	query := `SELECT ` + domainColumns + ` FROM domains WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)

	d, err := scanDomain(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find domain: %w", err)
	}
	return d, nil
}

// FindAllByUser returns all domain records attached to a user.
func (r *DomainRepository) FindAllByUser(ctx context.Context, userID string) ([]*appdomain.Domain, error) {
	query := `SELECT ` + domainColumns + ` FROM domains WHERE user_id = $1 ORDER BY name`
	return r.queryMany(ctx, query, userID)
}

// ListAll returns every domain record ordered by name.
func (r *DomainRepository) ListAll(ctx context.Context) ([]*appdomain.Domain, error) {
	query := `SELECT ` + domainColumns + ` FROM domains ORDER BY name`
	return r.queryMany(ctx, query)
}

func (r *DomainRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]*appdomain.Domain, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query domains: %w", err)
	}
	defer rows.Close()

	var domains []*appdomain.Domain
	for rows.Next() {
		d, err := scanDomain(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan domain: %w", err)
		}
		domains = append(domains, d)
	}
	return domains, nil
}

// Update overwrites a domain's mutable fields.
func (r *DomainRepository) Update(ctx context.Context, d *appdomain.Domain) error {
	query := `
		UPDATE domains
		SET status = $1, user_id = $2, expiry_date = $3, price = $4
		WHERE id = $5
	`
	_, err := r.db.Exec(ctx, query, d.Status, d.UserID, d.ExpiryDate, d.Price, d.ID)
	if err != nil {
		return fmt.Errorf("failed to update domain: %w", err)
	}
	return nil
}

// Delete removes a domain record by ID.
func (r *DomainRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM domains WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete domain: %w", err)
	}
	return nil
}

// ExpireOverdue marks registered domains whose expiry date has passed and
// returns the number of rows transitioned.
func (r *DomainRepository) ExpireOverdue(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE domains SET status = 'expired'
		WHERE status = 'registered' AND expiry_date IS NOT NULL AND expiry_date < NOW()
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to expire domains: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanDomain(row rowScanner) (*appdomain.Domain, error) {
	var d appdomain.Domain
	err := row.Scan(&d.ID, &d.Name, &d.UserID, &d.Status, &d.RegistrationDate, &d.ExpiryDate, &d.Price, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
