package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for the failure modes of the custody and composition
// pipeline. Callers branch with errors.Is; packages wrap these with context
// at the failure site.
var (
	// ErrInvalidEncoding reports text that is not valid hex.
	ErrInvalidEncoding = errors.New("invalid hex encoding")

	// ErrFileExists reports a refused keystore overwrite.
	ErrFileExists = errors.New("keystore file exists")

	// ErrIO reports a filesystem read or write failure.
	ErrIO = errors.New("io failure")

	// ErrParse reports a malformed keystore container.
	ErrParse = errors.New("keystore parse failed")

	// ErrVersionMismatch reports an unsupported keystore container version.
	ErrVersionMismatch = errors.New("unsupported keystore version")

	// ErrTransport reports a failed or timed-out RPC exchange, before any
	// well-formed response envelope was obtained.
	ErrTransport = errors.New("rpc transport failure")

	// ErrShardMismatch reports that the secret key's derived shard differs
	// from the shard the node serves. This is the composition pipeline's
	// principal safety check.
	ErrShardMismatch = errors.New("the shard number of the secret key and the node do not match")

	// ErrShardInfoUnavailable reports that neither the block-info response
	// nor the node's system storage yielded shard info.
	ErrShardInfoUnavailable = errors.New("shard info unavailable")

	// ErrInvalidCall reports a call description the external call builder
	// rejected.
	ErrInvalidCall = errors.New("invalid call")

	// ErrInvalidKey reports secret or public key material of the wrong shape.
	ErrInvalidKey = errors.New("invalid key")
)

// RPCError is the non-null error object of a JSON-RPC response envelope.
// It is surfaced verbatim so callers can branch on the node's error code.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
