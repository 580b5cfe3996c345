package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeCart_ValidPayload(t *testing.T) {
	data := []byte(`{"sessionId":"ignored","items":[{"id":"a","type":"domain","title":"Domain","subtitle":"example.com","price":12.99}]}`)

	cart := decodeCart("s1", data)

	assert.Equal(t, "s1", cart.SessionID) // key wins over stored value
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "example.com", cart.Items[0].Subtitle)
}

func TestDecodeCart_CorruptPayloadYieldsEmptyCart(t *testing.T) {
	for _, data := range [][]byte{
		[]byte(`{"items": [`),
		[]byte(`not json at all`),
		[]byte(`42`),
	} {
		cart := decodeCart("s1", data)

		assert.Equal(t, "s1", cart.SessionID)
		assert.Empty(t, cart.Items)
	}
}

func TestCartKey(t *testing.T) {
	assert.Equal(t, "cart:abc-123", cartKey("abc-123"))
}
