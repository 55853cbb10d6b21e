package compose

import (
	"context"
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"shardkit/internal/domain"
	"shardkit/internal/rpc"
)

const (
	methodBestBlockInfo = "chain_getBestBlockInfo"
	methodGetStorage    = "state_getStorage"

	// Storage key names defined by the chain runtime.
	nonceKeyName     = "System AccountNonce"
	shardInfoKeyName = "System ShardInfo"
)

// bestBlockInfo is the node's reply to chain_getBestBlockInfo. Nodes that
// predate embedded shard info omit the shard fields.
type bestBlockInfo struct {
	BestNumber uint64          `json:"bestNumber"`
	BestHash   domain.HexBytes `json:"bestHash"`
	ShardNum   *uint16         `json:"shardNum"`
	ShardCount *uint16         `json:"shardCount"`
}

// chainState fetches the node view for this composition: best block number
// and hash plus the node's shard assignment, falling back to the System
// ShardInfo storage value when the block-info response lacks it.
func (s *Service) chainState(ctx context.Context) (*domain.ChainState, error) {
	info, err := rpc.Call[[]any, bestBlockInfo](ctx, s.client, methodBestBlockInfo, []any{})
	if err != nil {
		return nil, err
	}
	if len(info.BestHash) != domain.HashLen {
		return nil, errors.Wrapf(domain.ErrInvalidEncoding, "best hash must be %d bytes, got %d", domain.HashLen, len(info.BestHash))
	}

	state := &domain.ChainState{BestNumber: info.BestNumber, BestHash: info.BestHash}
	if info.ShardNum != nil && info.ShardCount != nil {
		state.ShardNum = *info.ShardNum
		state.ShardCount = *info.ShardCount
		return state, nil
	}

	num, count, err := s.fetchShardInfo(ctx)
	if err != nil {
		return nil, err
	}
	state.ShardNum = num
	state.ShardCount = count
	return state, nil
}

func (s *Service) fetchShardInfo(ctx context.Context) (uint16, uint16, error) {
	data, err := s.getStorage(ctx, storageValueKey(shardInfoKeyName))
	if err != nil {
		return 0, 0, err
	}
	// Two little-endian u16s: shard number, shard count.
	if len(data) < 4 {
		return 0, 0, errors.Wrapf(domain.ErrShardInfoUnavailable, "storage value is %d bytes", len(data))
	}
	return binary.LittleEndian.Uint16(data[0:2]), binary.LittleEndian.Uint16(data[2:4]), nil
}

// fetchNonce resolves the account nonce from node storage. An account with
// no stored value has an implicit nonce of zero, never an error.
func (s *Service) fetchNonce(ctx context.Context, public []byte) (uint64, error) {
	data, err := s.getStorage(ctx, storageMapKey(nonceKeyName, public))
	if err != nil {
		return 0, err
	}
	return decodeLittleEndianUint(data), nil
}

func (s *Service) getStorage(ctx context.Context, key domain.HexBytes) (domain.HexBytes, error) {
	return rpc.Call[[]domain.HexBytes, domain.HexBytes](ctx, s.client, methodGetStorage, []domain.HexBytes{key})
}

// storageValueKey hashes a plain storage value name.
func storageValueKey(name string) domain.HexBytes {
	sum := blake2b.Sum256([]byte(name))
	return sum[:]
}

// storageMapKey hashes a map entry: the literal map name followed by the raw
// entry key.
func storageMapKey(name string, key []byte) domain.HexBytes {
	buf := make([]byte, 0, len(name)+len(key))
	buf = append(buf, name...)
	buf = append(buf, key...)
	sum := blake2b.Sum256(buf)
	return sum[:]
}

// decodeLittleEndianUint reads an arbitrary-length little-endian unsigned
// integer. Empty input and values that do not fit a uint64 both resolve to
// zero.
func decodeLittleEndianUint(b []byte) uint64 {
	be := make([]byte, len(b))
	for i, x := range b {
		be[len(b)-1-i] = x
	}
	n := new(big.Int).SetBytes(be)
	if !n.IsUint64() {
		return 0
	}
	return n.Uint64()
}
