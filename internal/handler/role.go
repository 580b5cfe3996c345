package handler

import (
	"net/http"

	"github.com/adverra/backend/internal/domain"
	"github.com/adverra/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// RoleHandler handles role management endpoints (admin only).
type RoleHandler struct {
	roles *service.RoleService
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(roles *service.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// List handles GET /api/roles.
func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roles.List(r.Context())
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "roles", roles)
}

// Create handles POST /api/roles.
func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRoleRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	role, err := h.roles.Create(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusCreated, role)
}

// Update handles PUT /api/roles/{id}.
func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateRoleRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	role, err := h.roles.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, role)
}

// Delete handles DELETE /api/roles/{id}.
func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.roles.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]bool{"success": true})
}
