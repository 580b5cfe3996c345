package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptor_RoundTrip(t *testing.T) {
	enc, err := NewEncryptor("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt([]byte("4111-1111-1111-1111"))
	require.NoError(t, err)
	assert.NotContains(t, ciphertext, "4111")

	plain, err := enc.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "4111-1111-1111-1111", string(plain))
}

func TestEncryptor_RejectsShortKey(t *testing.T) {
	_, err := NewEncryptor("too-short")
	assert.Error(t, err)
}

func TestEncryptor_RejectsTamperedCiphertext(t *testing.T) {
	enc, err := NewEncryptor("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt([]byte("secret"))
	require.NoError(t, err)

	_, err = enc.Decrypt(ciphertext[:len(ciphertext)-2] + "zz")
	assert.Error(t, err)
}
