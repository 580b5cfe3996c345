package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockGateway_SignVerifyRoundTrip(t *testing.T) {
	g := NewMockGateway("webhook-secret")
	payload := []byte(`{"transactionId":"tx1","status":"success"}`)

	sig := g.Sign(payload)

	assert.True(t, g.VerifySignature(payload, sig))
	assert.False(t, g.VerifySignature([]byte(`tampered`), sig))
	assert.False(t, g.VerifySignature(payload, "deadbeef"))
}

func TestMockGateway_DifferentSecretsProduceDifferentSignatures(t *testing.T) {
	payload := []byte(`{"transactionId":"tx1"}`)
	a := NewMockGateway("secret-a").Sign(payload)
	b := NewMockGateway("secret-b").Sign(payload)

	assert.NotEqual(t, a, b)
}

func TestMockGateway_CreatePaymentLink(t *testing.T) {
	g := NewMockGateway("s")

	link, err := g.CreatePaymentLink("u1", "tx1", 12.99)

	assert.NoError(t, err)
	assert.Contains(t, link, "tx=tx1")
	assert.Contains(t, link, "amount=12.99")
}
