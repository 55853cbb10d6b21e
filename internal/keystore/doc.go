// Package keystore persists secret keys encrypted at rest.
//
// The on-disk container is a small UTF-8 JSON document:
//
//	{"version":"1.0","secret_key":"0x<hex ciphertext>"}
//
// Files are created exactly once and never mutated in place; Save refuses to
// overwrite. Load dispatches on the version tag and rejects anything but the
// current one, so future formats can be added without breaking the read path.
package keystore
