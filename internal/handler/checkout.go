package handler

import (
	"net/http"

	"github.com/adverra/backend/internal/contextkeys"
	"github.com/adverra/backend/internal/domain"
	"github.com/adverra/backend/internal/service"
)

// CheckoutHandler submits the session cart for purchase.
type CheckoutHandler struct {
	checkout *service.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkout *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Submit handles POST /api/checkout. Requires auth; the cart session
// header identifies which cart to convert.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextkeys.UserID).(string)
	if !ok || userID == "" {
		JSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	sid, err := cartSession(r)
	if err != nil {
		Error(w, err)
		return
	}

	var req domain.CheckoutRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	result, err := h.checkout.Checkout(r.Context(), userID, sid, &req)
	if err != nil {
		Error(w, err)
		return
	}

	status := http.StatusOK
	if !result.AllSucceeded() {
		// Partial failure: the caller retries the failed subset
		status = http.StatusMultiStatus
	}
	JSON(w, status, map[string]interface{}{
		"success":  result.AllSucceeded(),
		"created":  result.Created,
		"failures": result.Failures,
	})
}
