package service

import (
	"context"
	"errors"
	"testing"

	"github.com/adverra/backend/internal/domain"
	"github.com/adverra/backend/pkg/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEncryptor(t *testing.T) *crypto.Encryptor {
	t.Helper()
	enc, err := crypto.NewEncryptor("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	return enc
}

func seedCart(t *testing.T, store *memCartStore, sessionID string, items ...domain.CartItem) {
	t.Helper()
	require.NoError(t, store.Set(context.Background(), &domain.Cart{
		SessionID: sessionID,
		Items:     items,
	}))
}

func checkoutReq() *domain.CheckoutRequest {
	return &domain.CheckoutRequest{PaymentMethod: "card", Currency: "USD"}
}

func TestCheckout_RequiresAuthenticatedUser(t *testing.T) {
	svc := NewCheckoutService(newMemCartStore(), &mockTxStore{}, &recordingPublisher{}, testEncryptor(t))

	_, err := svc.Checkout(context.Background(), "", "s1", checkoutReq())

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)
}

func TestCheckout_EmptyCartIsRejected(t *testing.T) {
	svc := NewCheckoutService(newMemCartStore(), &mockTxStore{}, &recordingPublisher{}, testEncryptor(t))

	_, err := svc.Checkout(context.Background(), "u1", "s1", checkoutReq())

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestCheckout_AllSucceededClearsCart(t *testing.T) {
	cartStore := newMemCartStore()
	txStore := &mockTxStore{}
	events := &recordingPublisher{}
	svc := NewCheckoutService(cartStore, txStore, events, testEncryptor(t))
	ctx := context.Background()

	seedCart(t, cartStore, "s1",
		domain.CartItem{ID: "dom-1", Type: domain.CartItemDomain, Title: "Domain", Subtitle: "example.com", Price: 12.99},
		domain.CartItem{ID: "host-1", Type: domain.CartItemHosting, Title: "Hosting", Subtitle: "pro-plan", Price: 29.99},
	)

	result, err := svc.Checkout(ctx, "u1", "s1", checkoutReq())
	require.NoError(t, err)

	assert.True(t, result.AllSucceeded())
	require.Len(t, result.Created, 2)
	assert.Len(t, events.CreatedEvents, 2)

	// Item types map onto transaction categories.
	assert.Equal(t, domain.TxRegister, result.Created[0].Type)
	require.NotNil(t, result.Created[0].DomainID)
	assert.Equal(t, "dom-1", *result.Created[0].DomainID)
	assert.Equal(t, domain.TxHostingPayment, result.Created[1].Type)
	require.NotNil(t, result.Created[1].HostingPackageID)
	assert.Equal(t, "host-1", *result.Created[1].HostingPackageID)

	for _, tx := range result.Created {
		assert.Equal(t, domain.TxPending, tx.Status)
		assert.Equal(t, "u1", tx.UserID)
	}

	cart, err := cartStore.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Contains(t, cartStore.deleted, "s1")
}

func TestCheckout_PartialFailureKeepsFailedItemInCart(t *testing.T) {
	cartStore := newMemCartStore()
	txStore := &mockTxStore{
		CreateErrFor: map[string]error{"host-1": errors.New("store unavailable")},
	}
	events := &recordingPublisher{}
	svc := NewCheckoutService(cartStore, txStore, events, testEncryptor(t))
	ctx := context.Background()

	seedCart(t, cartStore, "s1",
		domain.CartItem{ID: "dom-1", Type: domain.CartItemDomain, Title: "Domain", Subtitle: "example.com", Price: 12.99},
		domain.CartItem{ID: "host-1", Type: domain.CartItemHosting, Title: "Hosting", Subtitle: "pro-plan", Price: 29.99},
	)

	result, err := svc.Checkout(ctx, "u1", "s1", checkoutReq())
	require.NoError(t, err) // partial failure is per-item, never fatal

	assert.False(t, result.AllSucceeded())
	require.Len(t, result.Created, 1)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "host-1", result.Failures[0].ItemID)
	assert.Equal(t, "pro-plan", result.Failures[0].Subtitle)

	// Exactly one pending transaction was recorded, for the succeeded item.
	require.Len(t, txStore.Created, 1)
	assert.Equal(t, domain.TxPending, txStore.Created[0].Status)
	require.NotNil(t, txStore.Created[0].DomainID)
	assert.Equal(t, "dom-1", *txStore.Created[0].DomainID)
	assert.Equal(t, events.CreatedEvents, []string{txStore.Created[0].ID})

	// Only the failed item survives in the cart, so a retry resubmits
	// just that item.
	cart, err := cartStore.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "host-1", cart.Items[0].ID)
}

func TestCheckout_EncryptsAccountNumberAtRest(t *testing.T) {
	cartStore := newMemCartStore()
	txStore := &mockTxStore{}
	enc := testEncryptor(t)
	svc := NewCheckoutService(cartStore, txStore, &recordingPublisher{}, enc)
	ctx := context.Background()

	seedCart(t, cartStore, "s1",
		domain.CartItem{ID: "dom-1", Type: domain.CartItemDomain, Title: "Domain", Subtitle: "example.com", Price: 12.99},
	)

	req := checkoutReq()
	req.AccountNo = "4111-1111-1111-1111"

	result, err := svc.Checkout(ctx, "u1", "s1", req)
	require.NoError(t, err)
	require.Len(t, result.Created, 1)

	stored := result.Created[0].AccountNo
	assert.NotEqual(t, req.AccountNo, stored)

	plain, err := enc.Decrypt(stored)
	require.NoError(t, err)
	assert.Equal(t, req.AccountNo, string(plain))
}
