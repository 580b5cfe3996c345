package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/adverra/backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

// CartStore persists one cart value per session key.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Set(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisCartStore keeps carts in Redis as a single JSON value per session,
// the server-side counterpart of a fixed local-storage key. Carts outlive
// restarts up to the TTL; a cart that cannot be decoded is discarded and
// treated as empty rather than surfaced as an error.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore creates a cart store with a 30-day session TTL.
func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{
		client: client,
		ttl:    30 * 24 * time.Hour,
	}
}

// Get loads the cart for a session. Missing keys and corrupt values both
// yield an empty cart.
func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &domain.Cart{SessionID: sessionID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	return decodeCart(sessionID, data), nil
}

// Set persists the full item list for a session, refreshing the TTL.
func (s *RedisCartStore) Set(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := s.client.Set(ctx, cartKey(cart.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Delete removes the cart for a session.
func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// decodeCart parses stored cart bytes. Unparseable data falls back to an
// empty cart: stale or hand-edited session data must never break the UI.
func decodeCart(sessionID string, data []byte) *domain.Cart {
	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		log.Printf("discarding corrupt cart for session %s: %v", sessionID, err)
		return &domain.Cart{SessionID: sessionID}
	}
	cart.SessionID = sessionID
	return &cart
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
