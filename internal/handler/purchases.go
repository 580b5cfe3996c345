package handler

import (
	"net/http"

	"github.com/adverra/backend/internal/contextkeys"
	"github.com/adverra/backend/internal/service"
)

// PurchasesHandler serves the "my domains" / "my hosting" / "my
// services" ownership views for the authenticated user.
type PurchasesHandler struct {
	purchases *service.PurchaseService
}

// NewPurchasesHandler creates a new PurchasesHandler.
func NewPurchasesHandler(purchases *service.PurchaseService) *PurchasesHandler {
	return &PurchasesHandler{purchases: purchases}
}

func authedUser(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(contextkeys.UserID).(string)
	return userID, ok && userID != ""
}

// Domains handles GET /api/me/domains.
func (h *PurchasesHandler) Domains(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(r)
	if !ok {
		JSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	domains, err := h.purchases.MyDomains(r.Context(), userID)
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "domains", domains)
}

// Hosting handles GET /api/me/hosting.
func (h *PurchasesHandler) Hosting(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(r)
	if !ok {
		JSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	purchases, err := h.purchases.MyHosting(r.Context(), userID)
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "hosting", purchases)
}

// Services handles GET /api/me/services.
func (h *PurchasesHandler) Services(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(r)
	if !ok {
		JSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	purchases, err := h.purchases.MyServices(r.Context(), userID)
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "services", purchases)
}
