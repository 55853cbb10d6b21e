package key

import (
	"crypto/rand"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"shardkit/internal/domain"
	"shardkit/internal/keystore"
)

// WellKnownShardCounts are the shard layouts reported when describing keys.
var WellKnownShardCounts = []uint16{4, 8}

// Service exposes key custody and inspection on top of the keystore and the
// external chain library.
type Service struct {
	chain domain.Chain
}

// New returns a key service backed by the given chain library.
func New(c domain.Chain) *Service { return &Service{chain: c} }

// ShardAssignment is one (shard number, shard count) pairing for a key.
type ShardAssignment struct {
	ShardNum   uint16 `json:"shard_num"`
	ShardCount uint16 `json:"shard_count"`
}

// Info describes key material: whichever secret components were supplied,
// the public key, both network addresses, and the shard assignments under
// the well-known shard counts.
type Info struct {
	MiniSecretKey  domain.HexBytes   `json:"mini_secret_key,omitempty"`
	SecretKey      domain.HexBytes   `json:"secret_key,omitempty"`
	PublicKey      domain.HexBytes   `json:"public_key"`
	Address        domain.Address    `json:"address"`
	TestnetAddress domain.Address    `json:"testnet_address"`
	Shard          []ShardAssignment `json:"shard"`
}

// Generated is the output of Generate: a fresh key pair that maps to the
// requested shard.
type Generated struct {
	ShardNum       uint16          `json:"shard_num"`
	ShardCount     uint16          `json:"shard_count"`
	MiniSecretKey  domain.HexBytes `json:"mini_secret_key"`
	SecretKey      domain.HexBytes `json:"secret_key"`
	PublicKey      domain.HexBytes `json:"public_key"`
	Address        domain.Address  `json:"address"`
	TestnetAddress domain.Address  `json:"testnet_address"`
}

// Put validates secret with the signer and stores it encrypted under
// password at path. An unparseable secret fails with domain.ErrInvalidKey
// before anything touches disk.
func (s *Service) Put(secret []byte, password, path string) error {
	if _, err := s.chain.PublicKeyFromSecret(secret); err != nil {
		return errors.Wrap(domain.ErrInvalidKey, err.Error())
	}
	return keystore.Save(secret, password, path)
}

// Get recovers the secret key stored at path. The keystore cannot detect a
// wrong password; the returned bytes are only as trustworthy as the
// password was correct.
func (s *Service) Get(password, path string) (domain.HexBytes, error) {
	return keystore.Load(password, path)
}

// Generate draws random mini secrets until the derived public key lands on
// shardNum under shardCount. The loop is expected to take shardCount tries
// on average.
func (s *Service) Generate(shardNum, shardCount uint16) (*Generated, error) {
	if shardCount == 0 || shardNum >= shardCount {
		return nil, errors.Errorf("shard number %d out of range for shard count %d", shardNum, shardCount)
	}

	tries := 0
	for {
		tries++
		mini := make([]byte, domain.MiniSecretKeyLen)
		if _, err := rand.Read(mini); err != nil {
			return nil, errors.Wrap(err, "read entropy")
		}
		secret, public, err := s.chain.KeyPairFromMiniSecret(mini)
		if err != nil {
			return nil, errors.Wrap(domain.ErrInvalidKey, err.Error())
		}

		num, ok := s.chain.ShardNumberFor(public, shardCount)
		if !ok || num != shardNum {
			continue
		}

		address, err := s.chain.EncodeAddress(public, domain.Mainnet)
		if err != nil {
			return nil, err
		}
		testnetAddress, err := s.chain.EncodeAddress(public, domain.Testnet)
		if err != nil {
			return nil, err
		}

		log.Debug().Int("tries", tries).Uint16("shard_num", shardNum).Msg("generated key pair")
		return &Generated{
			ShardNum:       shardNum,
			ShardCount:     shardCount,
			MiniSecretKey:  mini,
			SecretKey:      secret,
			PublicKey:      public,
			Address:        address,
			TestnetAddress: testnetAddress,
		}, nil
	}
}

// InspectMini expands a mini secret and describes the resulting key pair.
func (s *Service) InspectMini(mini []byte) (*Info, error) {
	secret, public, err := s.chain.KeyPairFromMiniSecret(mini)
	if err != nil {
		return nil, errors.Wrap(domain.ErrInvalidKey, err.Error())
	}
	info, err := s.describe(public)
	if err != nil {
		return nil, err
	}
	info.MiniSecretKey = mini
	info.SecretKey = secret
	return info, nil
}

// InspectSecret describes the key pair behind a full secret key.
func (s *Service) InspectSecret(secret []byte) (*Info, error) {
	public, err := s.chain.PublicKeyFromSecret(secret)
	if err != nil {
		return nil, errors.Wrap(domain.ErrInvalidKey, err.Error())
	}
	info, err := s.describe(public)
	if err != nil {
		return nil, err
	}
	info.SecretKey = secret
	return info, nil
}

// InspectPublic describes a bare public key.
func (s *Service) InspectPublic(public []byte) (*Info, error) {
	if len(public) != domain.PublicKeyLen {
		return nil, errors.Wrapf(domain.ErrInvalidKey, "public key must be %d bytes, got %d", domain.PublicKeyLen, len(public))
	}
	return s.describe(public)
}

// InspectAddress decodes an address back to its public key and describes it.
func (s *Service) InspectAddress(address domain.Address) (*Info, error) {
	public, _, err := s.chain.DecodeAddress(address)
	if err != nil {
		return nil, errors.Wrap(domain.ErrInvalidKey, err.Error())
	}
	return s.describe(public)
}

func (s *Service) describe(public []byte) (*Info, error) {
	address, err := s.chain.EncodeAddress(public, domain.Mainnet)
	if err != nil {
		return nil, err
	}
	testnetAddress, err := s.chain.EncodeAddress(public, domain.Testnet)
	if err != nil {
		return nil, err
	}

	shard := make([]ShardAssignment, 0, len(WellKnownShardCounts))
	for _, count := range WellKnownShardCounts {
		if num, ok := s.chain.ShardNumberFor(public, count); ok {
			shard = append(shard, ShardAssignment{ShardNum: num, ShardCount: count})
		}
	}

	return &Info{
		PublicKey:      domain.HexBytes(public),
		Address:        address,
		TestnetAddress: testnetAddress,
		Shard:          shard,
	}, nil
}
