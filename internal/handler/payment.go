package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/adverra/backend/internal/domain"
	"github.com/adverra/backend/internal/service"
	"github.com/adverra/backend/pkg/payment"
	"github.com/go-chi/chi/v5"
)

// PaymentHandler processes payment gateway callbacks that settle
// pending transactions.
type PaymentHandler struct {
	txs     *service.TransactionService
	gateway payment.PaymentGateway
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(txs *service.TransactionService, gateway payment.PaymentGateway) *PaymentHandler {
	return &PaymentHandler{txs: txs, gateway: gateway}
}

// Webhook handles POST /api/payment/webhook. The gateway posts a signed
// notification when a payment settles or fails; the referenced
// transaction transitions from pending accordingly.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("X-Payment-Signature")
	if !h.gateway.VerifySignature(body, signature) {
		JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid signature"})
		return
	}

	var notif payment.WebhookNotification
	if err := json.Unmarshal(body, &notif); err != nil {
		Error(w, domain.ErrBadRequest("invalid webhook payload"))
		return
	}

	status := domain.TxFailed
	if notif.Status == payment.StatusSuccess {
		status = domain.TxCompleted
	}

	if _, err := h.txs.UpdateStatus(r.Context(), notif.TransactionID,
		&domain.UpdateTransactionStatusRequest{Status: status}); err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Simulate handles POST /api/payment/simulate/{id} (ADMIN ONLY — gated
// in router): instantly completes a pending transaction, bypassing the
// gateway.
func (h *PaymentHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	tx, err := h.txs.UpdateStatus(r.Context(), chi.URLParam(r, "id"),
		&domain.UpdateTransactionStatusRequest{Status: domain.TxCompleted})
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, tx)
}
