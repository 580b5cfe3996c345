package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// PaymentGateway defines the interface for payment providers.
type PaymentGateway interface {
	// CreatePaymentLink creates a checkout session/link for a transaction.
	CreatePaymentLink(userID, transactionID string, amount float64) (string, error)
	// VerifySignature verifies a webhook payload signature.
	VerifySignature(payload []byte, signature string) bool
}

// WebhookNotification is the payload the gateway posts back after a
// payment settles or fails.
type WebhookNotification struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"` // success or failed
}

// Gateway-side settlement statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// MockGateway simulates a provider. Payment links point at a dummy URL
// and webhook signatures are HMAC-SHA256 over the raw payload, so the
// verification path is exercised even without a real provider.
type MockGateway struct {
	secret []byte
}

// NewMockGateway creates a mock gateway with the given webhook secret.
func NewMockGateway(secret string) *MockGateway {
	return &MockGateway{secret: []byte(secret)}
}

func (g *MockGateway) CreatePaymentLink(userID, transactionID string, amount float64) (string, error) {
	return fmt.Sprintf("https://pay.example.com/checkout?tx=%s&amount=%.2f", transactionID, amount), nil
}

func (g *MockGateway) VerifySignature(payload []byte, signature string) bool {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign computes the signature for a payload. Exposed for tests and for
// the admin payment simulator.
func (g *MockGateway) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
