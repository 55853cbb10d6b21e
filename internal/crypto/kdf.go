package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// Key schedule sizes. The cipher key is an AES-256 key; the IV is derived at
// the same width and truncated to the counter block where used.
const (
	KeyLen = 32
	IVLen  = 32
)

// Fixed derivation parameters. These are process-wide constants, not
// secrets, and are never user-configurable.
const kdfIterations = 1024

var kdfSalt = []byte("shardkit-keystore")

// DeriveKeySchedule stretches a password into the cipher key and IV used by
// the keystore cipher. A single 64-byte PBKDF2-SHA256 pass is split down the
// middle so key and IV material never correlate by reuse. Identical
// passwords always yield identical schedules.
func DeriveKeySchedule(password string) (key, iv []byte) {
	material := pbkdf2.Key([]byte(password), kdfSalt, kdfIterations, KeyLen+IVLen, sha256.New)
	return material[:KeyLen], material[KeyLen:]
}
