package domain

// Cart item types.
const (
	CartItemDomain  = "domain"
	CartItemHosting = "hosting"
)

// CartItem is a candidate purchase held in a session cart.
// Subtitle is the natural key: the cart never holds two items with the
// same subtitle, regardless of their IDs.
type CartItem struct {
	ID           string            `json:"id"`
	Type         string            `json:"type"`
	Title        string            `json:"title"`
	Subtitle     string            `json:"subtitle"`
	Price        float64           `json:"price"`
	Options      map[string]string `json:"options,omitempty"`
	RenewalPrice *float64          `json:"renewalPrice,omitempty"`
}

// Cart holds the candidate purchases for one browser session. It is
// persisted as a single value in the cart store on every mutation and
// rehydrated on read.
type Cart struct {
	SessionID string     `json:"sessionId"`
	Items     []CartItem `json:"items"`
}

// Total is the sum of item prices. It is always recomputed from the
// current item list, never cached.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price
	}
	return total
}

// Contains reports whether an item with the given subtitle is in the cart.
func (c *Cart) Contains(subtitle string) bool {
	for _, it := range c.Items {
		if it.Subtitle == subtitle {
			return true
		}
	}
	return false
}

// Add inserts the item unless one with the same subtitle already exists.
// Duplicate adds are a no-op (first writer wins), not an error.
func (c *Cart) Add(item CartItem) {
	if c.Contains(item.Subtitle) {
		return
	}
	c.Items = append(c.Items, item)
}

// Remove deletes the item with the given ID. Absent IDs are a no-op.
func (c *Cart) Remove(itemID string) {
	for i, it := range c.Items {
		if it.ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Toggle removes the item if one with the same subtitle exists,
// otherwise adds it. This backs the "select/deselect this plan" action.
func (c *Cart) Toggle(item CartItem) {
	for i, it := range c.Items {
		if it.Subtitle == item.Subtitle {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// AddCartItemRequest is the validated input for adding or toggling a cart item.
type AddCartItemRequest struct {
	ID           string            `json:"id" validate:"required"`
	Type         string            `json:"type" validate:"required,oneof=domain hosting"`
	Title        string            `json:"title" validate:"required"`
	Subtitle     string            `json:"subtitle" validate:"required"`
	Price        float64           `json:"price" validate:"gte=0"`
	Options      map[string]string `json:"options"`
	RenewalPrice *float64          `json:"renewalPrice"`
}

// Item converts the request into a CartItem.
func (r *AddCartItemRequest) Item() CartItem {
	return CartItem{
		ID:           r.ID,
		Type:         r.Type,
		Title:        r.Title,
		Subtitle:     r.Subtitle,
		Price:        r.Price,
		Options:      r.Options,
		RenewalPrice: r.RenewalPrice,
	}
}

// CartResponse is the API view of a cart with its derived total.
type CartResponse struct {
	SessionID string     `json:"sessionId"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
}
