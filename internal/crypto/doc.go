// Package crypto implements the keystore's symmetric primitives: the
// password-derived key schedule and the CTR keystream cipher.
//
// # Known weaknesses, kept on purpose
//
// The key derivation uses a fixed salt and iteration count, so a given
// password always yields the same key schedule regardless of file. The
// ciphertext carries no authentication tag, so decrypting with a wrong
// password produces garbage bytes instead of an error; callers must validate
// the recovered bytes before trusting them. Both properties are part of the
// container contract and changing them would break every existing keystore.
package crypto
