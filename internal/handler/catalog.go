package handler

import (
	"net/http"

	"github.com/adverra/backend/internal/contextkeys"
	"github.com/adverra/backend/internal/domain"
	"github.com/adverra/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// CatalogHandler handles domains, hosting packages, and services.
// List/get endpoints are public; mutations are admin-gated in the router.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// CheckDomain handles GET /api/domains/check?domain=name.
func (h *CatalogHandler) CheckDomain(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalog.CheckDomain(r.URL.Query().Get("domain"))
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "results", results)
}

// ListDomains handles GET /api/domains.
func (h *CatalogHandler) ListDomains(w http.ResponseWriter, r *http.Request) {
	domains, err := h.catalog.ListDomains(r.Context())
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "domains", domains)
}

// ListUserDomains handles GET /api/domains/user/{userId} (self or admin).
func (h *CatalogHandler) ListUserDomains(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := authedUser(r)
	if !ok {
		JSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}
	role, _ := r.Context().Value(contextkeys.UserRole).(string)

	domains, err := h.catalog.ListUserDomains(r.Context(), requesterID, role, chi.URLParam(r, "userId"))
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "domains", domains)
}

// GetDomain handles GET /api/domains/{id}.
func (h *CatalogHandler) GetDomain(w http.ResponseWriter, r *http.Request) {
	d, err := h.catalog.GetDomain(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, d)
}

// CreateDomain handles POST /api/domains (admin).
func (h *CatalogHandler) CreateDomain(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDomainRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	d, err := h.catalog.CreateDomain(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusCreated, d)
}

// UpdateDomain handles PUT /api/domains/{id} (admin).
func (h *CatalogHandler) UpdateDomain(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateDomainRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	d, err := h.catalog.UpdateDomain(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, d)
}

// DeleteDomain handles DELETE /api/domains/{id} (admin).
func (h *CatalogHandler) DeleteDomain(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteDomain(r.Context(), chi.URLParam(r, "id")); err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ListHosting handles GET /api/hosting.
func (h *CatalogHandler) ListHosting(w http.ResponseWriter, r *http.Request) {
	pkgs, err := h.catalog.ListHostingPackages(r.Context())
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "packages", pkgs)
}

// GetHosting handles GET /api/hosting/{id}.
func (h *CatalogHandler) GetHosting(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.catalog.GetHostingPackage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, pkg)
}

// CreateHosting handles POST /api/hosting (admin).
func (h *CatalogHandler) CreateHosting(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateHostingPackageRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	pkg, err := h.catalog.CreateHostingPackage(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusCreated, pkg)
}

// UpdateHosting handles PUT /api/hosting/{id} (admin).
func (h *CatalogHandler) UpdateHosting(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateHostingPackageRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	pkg, err := h.catalog.UpdateHostingPackage(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, pkg)
}

// DeleteHosting handles DELETE /api/hosting/{id} (admin).
func (h *CatalogHandler) DeleteHosting(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteHostingPackage(r.Context(), chi.URLParam(r, "id")); err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.ListServices(r.Context())
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "services", services)
}

// GetService handles GET /api/services/{id}.
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	svc, err := h.catalog.GetService(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, svc)
}

// CreateService handles POST /api/services (admin).
func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateServiceRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	svc, err := h.catalog.CreateService(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusCreated, svc)
}

// UpdateService handles PUT /api/services/{id} (admin).
func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateServiceRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	svc, err := h.catalog.UpdateService(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, svc)
}

// DeleteService handles DELETE /api/services/{id} (admin).
func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteService(r.Context(), chi.URLParam(r, "id")); err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}
