package handler

import (
	"net/http"

	"github.com/adverra/backend/internal/contextkeys"
	"github.com/adverra/backend/internal/domain"
	"github.com/adverra/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// TransactionHandler handles the purchase ledger endpoints.
type TransactionHandler struct {
	txs *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txs *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txs: txs}
}

// Create handles POST /api/transactions. The transaction is always
// recorded against the authenticated user.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(r)
	if !ok {
		JSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	var req domain.CreateTransactionRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	tx, err := h.txs.Create(r.Context(), userID, &req)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusCreated, tx)
}

// ListByUser handles GET /api/transactions/user/{userId} (self or admin).
func (h *TransactionHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := authedUser(r)
	if !ok {
		JSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}
	role, _ := r.Context().Value(contextkeys.UserRole).(string)

	txs, err := h.txs.ListByUser(r.Context(), requesterID, role, chi.URLParam(r, "userId"))
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "transactions", txs)
}

// List handles GET /api/transactions (admin only, gated in router).
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	txs, err := h.txs.ListAll(r.Context())
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "transactions", txs)
}

// UpdateStatus handles PATCH /api/transactions/{id}/status (admin).
func (h *TransactionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateTransactionStatusRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	tx, err := h.txs.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, tx)
}

// Delete handles DELETE /api/transactions/{id} (admin).
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.txs.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}
