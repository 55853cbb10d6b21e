package crypto

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/pkg/errors"
)

// EncryptSecret encrypts an arbitrary-length secret blob under the schedule
// derived from password. CTR mode keeps the ciphertext the same length as
// the plaintext and needs no padding.
func EncryptSecret(plain []byte, password string) ([]byte, error) {
	return xorKeystream(plain, password)
}

// DecryptSecret is the same keystream XOR as EncryptSecret. There is no
// integrity check: a wrong password yields same-length garbage, never an
// error.
func DecryptSecret(ciphertext []byte, password string) ([]byte, error) {
	return xorKeystream(ciphertext, password)
}

func xorKeystream(in []byte, password string) ([]byte, error) {
	key, iv := DeriveKeySchedule(password)
	defer Wipe(key)
	defer Wipe(iv)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "create cipher")
	}
	out := make([]byte, len(in))
	// The counter block is one AES block wide; the schedule's leading IV
	// bytes seed it.
	cipher.NewCTR(block, iv[:aes.BlockSize]).XORKeyStream(out, in)
	return out, nil
}
