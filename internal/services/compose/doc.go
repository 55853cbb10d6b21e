// Package compose builds signed transactions. One composition is a single
// linear pass: validate the call, fetch fresh chain state, recover the
// secret key from the keystore, check the key's shard against the node's,
// resolve the nonce, sign, serialize. The first failure aborts the whole
// operation; nothing is retried and no partial result is emitted.
package compose
