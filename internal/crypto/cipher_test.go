package crypto_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shardkit/internal/crypto"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	for _, plain := range [][]byte{
		{},
		{0x01},
		bytes.Repeat([]byte{0xab}, 15),
		bytes.Repeat([]byte{0xcd}, 64),
		[]byte("an arbitrary-length secret key blob, longer than one block"),
	} {
		ct, err := crypto.EncryptSecret(plain, "pw")
		require.NoError(t, err)
		assert.Len(t, ct, len(plain))

		pt, err := crypto.DecryptSecret(ct, "pw")
		require.NoError(t, err)
		assert.Equal(t, plain, pt)
	}
}

func TestEncrypt_ChangesBytes(t *testing.T) {
	plain := bytes.Repeat([]byte{0x11}, 64)
	ct, err := crypto.EncryptSecret(plain, "pw")
	require.NoError(t, err)
	assert.NotEqual(t, plain, ct)
}

// A wrong password is not an error: CTR has no integrity check, so decryption
// silently yields different bytes of the same length.
func TestDecrypt_WrongPasswordYieldsGarbage(t *testing.T) {
	plain := []byte("super secret key material")
	ct, err := crypto.EncryptSecret(plain, "right")
	require.NoError(t, err)

	pt, err := crypto.DecryptSecret(ct, "wrong")
	require.NoError(t, err)
	assert.Len(t, pt, len(plain))
	assert.NotEqual(t, plain, pt)
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	crypto.Wipe(b)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)
}
