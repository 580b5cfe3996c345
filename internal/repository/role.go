package repository

import (
	"context"
	"fmt"

	"github.com/adverra/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RoleRepository handles database operations for roles.
type RoleRepository struct {
	db *pgxpool.Pool
}

// NewRoleRepository creates a new RoleRepository.
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{db: db}
}

// Create inserts a new role.
func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) error {
	query := `INSERT INTO roles (id, name, permissions, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, role.ID, role.Name, role.Permissions, role.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}

// FindByID returns a role by ID, or nil if absent.
func (r *RoleRepository) FindByID(ctx context.Context, id string) (*domain.Role, error) {
	query := `SELECT id, name, permissions, created_at FROM roles WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)

	var role domain.Role
	err := row.Scan(&role.ID, &role.Name, &role.Permissions, &role.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}
	return &role, nil
}

// ListAll returns all roles ordered by name.
func (r *RoleRepository) ListAll(ctx context.Context) ([]*domain.Role, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, permissions, created_at FROM roles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []*domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Permissions, &role.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, &role)
	}
	return roles, nil
}

// Update overwrites a role's name and permissions.
func (r *RoleRepository) Update(ctx context.Context, role *domain.Role) error {
	query := `UPDATE roles SET name = $1, permissions = $2 WHERE id = $3`
	_, err := r.db.Exec(ctx, query, role.Name, role.Permissions, role.ID)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return nil
}

// Delete removes a role by ID.
func (r *RoleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}
