package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func item(id, subtitle string, price float64) CartItem {
	return CartItem{ID: id, Type: CartItemDomain, Title: "Domain", Subtitle: subtitle, Price: price}
}

func TestCartAdd_DuplicateSubtitleIsNoOp(t *testing.T) {
	cart := &Cart{SessionID: "s1"}

	cart.Add(item("a", "example.com", 12.99))
	cart.Add(item("b", "example.com", 99.99)) // same subtitle, different id and price
	cart.Add(item("c", "example.net", 14.99))

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, "a", cart.Items[0].ID) // first writer wins
	assert.Equal(t, 12.99, cart.Items[0].Price)
}

func TestCartTotal_RecomputedAfterEveryMutation(t *testing.T) {
	cart := &Cart{SessionID: "s1"}

	cart.Add(item("a", "example.com", 12.99))
	cart.Add(item("b", "example.net", 14.99))
	assert.InDelta(t, 27.98, cart.Total(), 0.001)

	cart.Remove("a")
	assert.InDelta(t, 14.99, cart.Total(), 0.001)

	cart.Clear()
	assert.Zero(t, cart.Total())
}

func TestCartToggle_DoubleToggleIsIdentity(t *testing.T) {
	cart := &Cart{SessionID: "s1"}
	cart.Add(item("a", "example.com", 12.99))

	before := len(cart.Items)
	cart.Toggle(item("b", "starter-plan", 5.99))
	cart.Toggle(item("b", "starter-plan", 5.99))

	assert.Len(t, cart.Items, before)
	assert.False(t, cart.Contains("starter-plan"))
	assert.True(t, cart.Contains("example.com"))
}

func TestCartToggle_RemovesBySubtitleNotID(t *testing.T) {
	cart := &Cart{SessionID: "s1"}
	cart.Add(item("a", "example.com", 12.99))

	// Different ID, same subtitle: toggle must remove the existing item.
	cart.Toggle(item("z", "example.com", 12.99))

	assert.Empty(t, cart.Items)
}

func TestCartMembership_AtMostOnePerSubtitle(t *testing.T) {
	cart := &Cart{SessionID: "s1"}

	// An arbitrary add/toggle sequence.
	cart.Add(item("a", "example.com", 12.99))
	cart.Toggle(item("b", "pro-plan", 29.99))
	cart.Add(item("c", "pro-plan", 29.99))
	cart.Toggle(item("d", "example.com", 12.99))
	cart.Toggle(item("e", "example.com", 12.99))
	cart.Add(item("f", "pro-plan", 29.99))

	seen := make(map[string]int)
	for _, it := range cart.Items {
		seen[it.Subtitle]++
	}
	for subtitle, n := range seen {
		assert.Equalf(t, 1, n, "subtitle %q appears %d times", subtitle, n)
	}
}

func TestCartRemove_AbsentIDIsNoOp(t *testing.T) {
	cart := &Cart{SessionID: "s1"}
	cart.Add(item("a", "example.com", 12.99))

	cart.Remove("missing")

	assert.Len(t, cart.Items, 1)
}
