package service

import (
	"context"
	"time"

	"github.com/adverra/backend/internal/domain"
	"github.com/adverra/backend/internal/repository"
	"github.com/go-playground/validator/v10"
)

// RoleService handles named permission sets (admin only).
type RoleService struct {
	repo     *repository.RoleRepository
	validate *validator.Validate
}

// NewRoleService creates a new RoleService.
func NewRoleService(repo *repository.RoleRepository) *RoleService {
	return &RoleService{repo: repo, validate: validator.New()}
}

func (s *RoleService) Create(ctx context.Context, req *domain.CreateRoleRequest) (*domain.Role, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	role := &domain.Role{
		ID:          domain.NewID(),
		Name:        req.Name,
		Permissions: req.Permissions,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, role); err != nil {
		return nil, domain.ErrInternal("failed to create role", err)
	}
	return role, nil
}

func (s *RoleService) List(ctx context.Context) ([]*domain.Role, error) {
	roles, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, domain.ErrInternal("failed to list roles", err)
	}
	return roles, nil
}

func (s *RoleService) Update(ctx context.Context, id string, req *domain.UpdateRoleRequest) (*domain.Role, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.ErrInternal("failed to find role", err)
	}
	if role == nil {
		return nil, domain.ErrNotFound("role not found")
	}

	if req.Name != "" {
		role.Name = req.Name
	}
	if req.Permissions != nil {
		role.Permissions = req.Permissions
	}

	if err := s.repo.Update(ctx, role); err != nil {
		return nil, domain.ErrInternal("failed to update role", err)
	}
	return role, nil
}

func (s *RoleService) Delete(ctx context.Context, id string) error {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.ErrInternal("failed to find role", err)
	}
	if role == nil {
		return domain.ErrNotFound("role not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return domain.ErrInternal("failed to delete role", err)
	}
	return nil
}
