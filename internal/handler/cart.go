package handler

import (
	"net/http"

	"github.com/adverra/backend/internal/domain"
	"github.com/adverra/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// sessionHeader carries the anonymous cart session. The cart works
// before login; only checkout requires authentication.
const sessionHeader = "X-Cart-Session"

// CartHandler handles the session cart endpoints.
type CartHandler struct {
	cart *service.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cart *service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

func cartSession(r *http.Request) (string, error) {
	sid := r.Header.Get(sessionHeader)
	if sid == "" {
		return "", domain.ErrBadRequest("missing " + sessionHeader + " header")
	}
	return sid, nil
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sid, err := cartSession(r)
	if err != nil {
		Error(w, err)
		return
	}

	cart, err := h.cart.Get(r.Context(), sid)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, cart)
}

// Add handles POST /api/cart/items.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	sid, err := cartSession(r)
	if err != nil {
		Error(w, err)
		return
	}

	var req domain.AddCartItemRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	cart, err := h.cart.Add(r.Context(), sid, &req)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, cart)
}

// Toggle handles POST /api/cart/toggle.
func (h *CartHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	sid, err := cartSession(r)
	if err != nil {
		Error(w, err)
		return
	}

	var req domain.AddCartItemRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	cart, err := h.cart.Toggle(r.Context(), sid, &req)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, cart)
}

// Remove handles DELETE /api/cart/items/{id}.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	sid, err := cartSession(r)
	if err != nil {
		Error(w, err)
		return
	}

	cart, err := h.cart.Remove(r.Context(), sid, chi.URLParam(r, "id"))
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, cart)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sid, err := cartSession(r)
	if err != nil {
		Error(w, err)
		return
	}

	if err := h.cart.Clear(r.Context(), sid); err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Contains handles GET /api/cart/contains?subtitle=...
func (h *CartHandler) Contains(w http.ResponseWriter, r *http.Request) {
	sid, err := cartSession(r)
	if err != nil {
		Error(w, err)
		return
	}

	subtitle := r.URL.Query().Get("subtitle")
	if subtitle == "" {
		Error(w, domain.ErrBadRequest("subtitle query parameter is required"))
		return
	}

	in, err := h.cart.Contains(r.Context(), sid, subtitle)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"inCart": in})
}
