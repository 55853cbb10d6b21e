// Package key implements the key custody operations: storing and recovering
// password-protected secret keys, generating key pairs bound to a shard, and
// describing key material as addresses and shard assignments.
package key
