package service

import (
	"context"
	"testing"

	"github.com/adverra/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addReq(id, subtitle string, price float64) *domain.AddCartItemRequest {
	return &domain.AddCartItemRequest{
		ID:       id,
		Type:     domain.CartItemDomain,
		Title:    "Domain",
		Subtitle: subtitle,
		Price:    price,
	}
}

func TestCartService_AddPersistsAndComputesTotal(t *testing.T) {
	store := newMemCartStore()
	svc := NewCartService(store)
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", addReq("a", "example.com", 12.99))
	require.NoError(t, err)

	resp, err := svc.Add(ctx, "s1", addReq("b", "example.net", 14.99))
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
	assert.InDelta(t, 27.98, resp.Total, 0.001)

	// A fresh read comes from the store, not from the mutation path.
	reloaded, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, reloaded.Items, 2)
	assert.InDelta(t, 27.98, reloaded.Total, 0.001)
}

func TestCartService_AddValidatesInput(t *testing.T) {
	svc := NewCartService(newMemCartStore())

	_, err := svc.Add(context.Background(), "s1", &domain.AddCartItemRequest{
		ID:   "a",
		Type: "subscription", // not an allowed type
	})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
}

func TestCartService_ClearThenReloadYieldsEmptyCart(t *testing.T) {
	store := newMemCartStore()
	svc := NewCartService(store)
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", addReq("a", "example.com", 12.99))
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "s1"))

	resp, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.Total)
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	store := newMemCartStore()
	svc := NewCartService(store)
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", addReq("a", "example.com", 12.99))
	require.NoError(t, err)

	other, err := svc.Get(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestCartService_Contains(t *testing.T) {
	store := newMemCartStore()
	svc := NewCartService(store)
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", addReq("a", "example.com", 12.99))
	require.NoError(t, err)

	in, err := svc.Contains(ctx, "s1", "example.com")
	require.NoError(t, err)
	assert.True(t, in)

	in, err = svc.Contains(ctx, "s1", "example.net")
	require.NoError(t, err)
	assert.False(t, in)
}

func TestCartService_RemoveByID(t *testing.T) {
	store := newMemCartStore()
	svc := NewCartService(store)
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", addReq("a", "example.com", 12.99))
	require.NoError(t, err)

	resp, err := svc.Remove(ctx, "s1", "a")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}
