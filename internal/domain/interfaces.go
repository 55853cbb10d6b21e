package domain

// Call is an opaque call value produced by the external call builder. Its
// structure and wire layout belong to the chain library.
type Call any

// SignedTransaction is an opaque signed transaction produced by the external
// signer.
type SignedTransaction any

// Signer is the capability surface of the external signing library.
type Signer interface {
	// PublicKeyFromSecret derives the public key for a secret key. A secret
	// of the wrong shape is rejected by the library.
	PublicKeyFromSecret(secret []byte) (HexBytes, error)

	// KeyPairFromMiniSecret expands a 32-byte mini secret into a full
	// secret/public key pair.
	KeyPairFromMiniSecret(mini []byte) (secret, public HexBytes, err error)

	// BuildCall parses a JSON call description into an opaque call value.
	BuildCall(callJSON []byte) (Call, error)

	// BuildTransaction signs call with secret. The transaction carries a
	// mortality era derived from (period, current): it becomes invalid
	// period blocks past current, bounding replay exposure.
	BuildTransaction(secret []byte, nonce, period, current uint64, currentHash []byte, call Call) (SignedTransaction, error)

	// EncodeTransaction serializes a signed transaction to its canonical
	// byte representation.
	EncodeTransaction(tx SignedTransaction) ([]byte, error)
}

// Sharder maps a public key to its shard under a given shard count. The
// second return is false when the library cannot assign a shard.
type Sharder interface {
	ShardNumberFor(public []byte, shardCount uint16) (uint16, bool)
}

// AddressCodec converts between public keys and account addresses.
type AddressCodec interface {
	EncodeAddress(public []byte, network Network) (Address, error)
	DecodeAddress(address Address) (HexBytes, Network, error)
}

// Chain bundles the capabilities one external chain library provides.
type Chain interface {
	Signer
	Sharder
	AddressCodec
}

// Prompter reads sensitive input without echoing or logging it.
type Prompter interface {
	PromptHidden(label string) (string, error)
}
