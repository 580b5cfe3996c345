package service

import (
	"context"

	"github.com/adverra/backend/internal/domain"
	"github.com/adverra/backend/internal/repository"
	"github.com/go-playground/validator/v10"
)

// CartService owns the session cart: every mutation is applied to the
// loaded cart and written back to the store in the same call, so the
// stored value always reflects the full item list.
type CartService struct {
	store    repository.CartStore
	validate *validator.Validate
}

// NewCartService creates a new CartService.
func NewCartService(store repository.CartStore) *CartService {
	return &CartService{
		store:    store,
		validate: validator.New(),
	}
}

// Get returns the cart with its derived total.
func (s *CartService) Get(ctx context.Context, sessionID string) (*domain.CartResponse, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, domain.ErrInternal("failed to load cart", err)
	}
	return toCartResponse(cart), nil
}

// Add inserts an item unless one with the same subtitle exists.
func (s *CartService) Add(ctx context.Context, sessionID string, req *domain.AddCartItemRequest) (*domain.CartResponse, error) {
	return s.mutate(ctx, sessionID, req, func(cart *domain.Cart) {
		cart.Add(req.Item())
	})
}

// Toggle removes a same-subtitle item if present, otherwise adds the item.
func (s *CartService) Toggle(ctx context.Context, sessionID string, req *domain.AddCartItemRequest) (*domain.CartResponse, error) {
	return s.mutate(ctx, sessionID, req, func(cart *domain.Cart) {
		cart.Toggle(req.Item())
	})
}

// Remove deletes an item by ID; absent IDs are a no-op.
func (s *CartService) Remove(ctx context.Context, sessionID, itemID string) (*domain.CartResponse, error) {
	return s.mutate(ctx, sessionID, nil, func(cart *domain.Cart) {
		cart.Remove(itemID)
	})
}

// Clear empties the session cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return domain.ErrInternal("failed to clear cart", err)
	}
	return nil
}

// Contains reports whether an item with the given subtitle is in the cart.
func (s *CartService) Contains(ctx context.Context, sessionID, subtitle string) (bool, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return false, domain.ErrInternal("failed to load cart", err)
	}
	return cart.Contains(subtitle), nil
}

func (s *CartService) mutate(ctx context.Context, sessionID string, req *domain.AddCartItemRequest, fn func(*domain.Cart)) (*domain.CartResponse, error) {
	if req != nil {
		if err := s.validate.Struct(req); err != nil {
			return nil, domain.ErrValidation(err.Error())
		}
	}

	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, domain.ErrInternal("failed to load cart", err)
	}

	fn(cart)

	if err := s.store.Set(ctx, cart); err != nil {
		return nil, domain.ErrInternal("failed to save cart", err)
	}
	return toCartResponse(cart), nil
}

func toCartResponse(cart *domain.Cart) *domain.CartResponse {
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return &domain.CartResponse{
		SessionID: cart.SessionID,
		Items:     items,
		Total:     cart.Total(),
	}
}
