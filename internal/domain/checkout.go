package domain

// CheckoutRequest is the validated input for converting a cart into
// pending transactions.
type CheckoutRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required"`
	AccountNo     string `json:"accountNo"`
	Currency      string `json:"currency" validate:"omitempty,len=3"`
}

// CheckoutFailure reports one cart item that could not be converted.
// The item stays in the cart so the caller can retry just the failed
// subset.
type CheckoutFailure struct {
	ItemID   string `json:"itemId"`
	Subtitle string `json:"subtitle"`
	Error    string `json:"error"`
}

// CheckoutResult is the per-item outcome of a checkout submission.
type CheckoutResult struct {
	Created  []*Transaction    `json:"created"`
	Failures []CheckoutFailure `json:"failures"`
}

// AllSucceeded reports whether every cart item became a transaction.
func (r *CheckoutResult) AllSucceeded() bool {
	return len(r.Failures) == 0
}
