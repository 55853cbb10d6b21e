package compose

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"shardkit/internal/crypto"
	"shardkit/internal/domain"
	"shardkit/internal/keystore"
	"shardkit/internal/rpc"
)

// DefaultPeriod is the mortality window, in blocks, applied when the caller
// does not specify one.
const DefaultPeriod = 64

// Request carries the operator's local intent for one composition.
type Request struct {
	KeystorePath string
	Password     string
	Nonce        *uint64 // nil: fetch the account nonce from the node
	Period       uint64  // 0: DefaultPeriod
	Call         []byte  // JSON call description, opaque to this service
}

// Service orchestrates the composition pipeline over the node client, the
// keystore and the external chain library.
type Service struct {
	client *rpc.Client
	chain  domain.Chain
}

// New returns a composer using client for chain state and chain for all
// signing, sharding and address work.
func New(client *rpc.Client, chain domain.Chain) *Service {
	return &Service{client: client, chain: chain}
}

// Compose runs the pipeline and returns the immutable composed transaction.
func (s *Service) Compose(ctx context.Context, req Request) (*domain.ComposedTransaction, error) {
	period := req.Period
	if period == 0 {
		period = DefaultPeriod
	}

	call, err := s.chain.BuildCall(req.Call)
	if err != nil {
		return nil, errors.Wrap(domain.ErrInvalidCall, err.Error())
	}

	state, err := s.chainState(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Uint64("best_number", state.BestNumber).
		Uint16("shard_num", state.ShardNum).
		Uint16("shard_count", state.ShardCount).
		Msg("fetched chain state")

	secret, err := keystore.Load(req.Password, req.KeystorePath)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(secret)

	public, err := s.chain.PublicKeyFromSecret(secret)
	if err != nil {
		return nil, errors.Wrap(domain.ErrInvalidKey, err.Error())
	}

	// The pipeline's principal safety check: never assemble a transaction
	// signed for a shard the node does not serve.
	keyShard, ok := s.chain.ShardNumberFor(public, state.ShardCount)
	if !ok || keyShard != state.ShardNum {
		return nil, errors.Wrapf(domain.ErrShardMismatch, "key shard %d, node shard %d", keyShard, state.ShardNum)
	}

	var nonce uint64
	if req.Nonce != nil {
		// Explicit nonces are used verbatim to support offline or queued
		// composition; validity against chain state is the caller's problem.
		nonce = *req.Nonce
	} else {
		nonce, err = s.fetchNonce(ctx, public)
		if err != nil {
			return nil, err
		}
	}

	tx, err := s.chain.BuildTransaction(secret, nonce, period, state.BestNumber, state.BestHash, call)
	if err != nil {
		return nil, err
	}
	raw, err := s.chain.EncodeTransaction(tx)
	if err != nil {
		return nil, err
	}

	address, err := s.chain.EncodeAddress(public, domain.Mainnet)
	if err != nil {
		return nil, err
	}
	testnetAddress, err := s.chain.EncodeAddress(public, domain.Testnet)
	if err != nil {
		return nil, err
	}

	return &domain.ComposedTransaction{
		ShardNum:             state.ShardNum,
		ShardCount:           state.ShardCount,
		SenderAddress:        address,
		SenderTestnetAddress: testnetAddress,
		Nonce:                nonce,
		Period:               period,
		Current:              state.BestNumber,
		CurrentHash:          state.BestHash,
		Raw:                  raw,
	}, nil
}
