package service

import (
	"context"
	"testing"

	"github.com/adverra/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTxService(store *mockTxStore, events *recordingPublisher, t *testing.T) *TransactionService {
	t.Helper()
	return NewTransactionService(store, events, testEncryptor(t))
}

func TestTransactionCreate_StartsPendingAndEmitsEvent(t *testing.T) {
	store := &mockTxStore{}
	events := &recordingPublisher{}
	svc := newTestTxService(store, events, t)

	tx, err := svc.Create(context.Background(), "u1", &domain.CreateTransactionRequest{
		Type:          domain.TxRegister,
		DomainID:      strPtr("d1"),
		Amount:        12.99,
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TxPending, tx.Status)
	assert.Equal(t, "USD", tx.Currency) // default
	assert.Equal(t, "u1", tx.UserID)
	require.Len(t, store.Created, 1)
	assert.Equal(t, []string{tx.ID}, events.CreatedEvents)
}

func TestTransactionCreate_RejectsUnknownType(t *testing.T) {
	svc := newTestTxService(&mockTxStore{}, &recordingPublisher{}, t)

	_, err := svc.Create(context.Background(), "u1", &domain.CreateTransactionRequest{
		Type:          "refund",
		PaymentMethod: "card",
	})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
}

func TestTransactionUpdateStatus_PendingToCompleted(t *testing.T) {
	pending := tx("u1", domain.TxRegister, domain.TxPending)
	store := &mockTxStore{Transactions: []*domain.Transaction{pending}}
	events := &recordingPublisher{}
	svc := newTestTxService(store, events, t)

	updated, err := svc.UpdateStatus(context.Background(), pending.ID,
		&domain.UpdateTransactionStatusRequest{Status: domain.TxCompleted})
	require.NoError(t, err)

	assert.Equal(t, domain.TxCompleted, updated.Status)
	assert.Equal(t, domain.TxCompleted, store.StatusSet[pending.ID])
	assert.Equal(t, []string{pending.ID}, events.StatusEvents)
}

func TestTransactionUpdateStatus_CompletedIsFinal(t *testing.T) {
	done := tx("u1", domain.TxRegister, domain.TxCompleted)
	store := &mockTxStore{Transactions: []*domain.Transaction{done}}
	svc := newTestTxService(store, &recordingPublisher{}, t)

	_, err := svc.UpdateStatus(context.Background(), done.ID,
		&domain.UpdateTransactionStatusRequest{Status: domain.TxFailed})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestTransactionUpdateStatus_MissingTransaction(t *testing.T) {
	svc := newTestTxService(&mockTxStore{}, &recordingPublisher{}, t)

	_, err := svc.UpdateStatus(context.Background(), "missing",
		&domain.UpdateTransactionStatusRequest{Status: domain.TxCompleted})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestTransactionListByUser_SelfOrAdminOnly(t *testing.T) {
	mine := tx("u1", domain.TxRegister, domain.TxPending)
	store := &mockTxStore{Transactions: []*domain.Transaction{mine}}
	svc := newTestTxService(store, &recordingPublisher{}, t)
	ctx := context.Background()

	txs, err := svc.ListByUser(ctx, "u1", "user", "u1")
	require.NoError(t, err)
	assert.Len(t, txs, 1)

	txs, err = svc.ListByUser(ctx, "a1", "admin", "u1")
	require.NoError(t, err)
	assert.Len(t, txs, 1)

	_, err = svc.ListByUser(ctx, "u2", "user", "u1")
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
}
