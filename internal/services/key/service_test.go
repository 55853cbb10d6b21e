package key_test

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shardkit/internal/domain"
	"shardkit/internal/services/key"
)

// fakeChain is a stand-in for an external chain library: the public key is
// the first half of the secret, the shard is the public key's last byte
// modulo the shard count, and addresses are synthetic but reversible.
type fakeChain struct{}

func (fakeChain) PublicKeyFromSecret(secret []byte) (domain.HexBytes, error) {
	if len(secret) != domain.SecretKeyLen {
		return nil, errors.Errorf("secret key must be %d bytes", domain.SecretKeyLen)
	}
	return domain.HexBytes(secret[:domain.PublicKeyLen]), nil
}

func (fakeChain) KeyPairFromMiniSecret(mini []byte) (domain.HexBytes, domain.HexBytes, error) {
	if len(mini) != domain.MiniSecretKeyLen {
		return nil, nil, errors.Errorf("mini secret must be %d bytes", domain.MiniSecretKeyLen)
	}
	secret := make(domain.HexBytes, 0, domain.SecretKeyLen)
	secret = append(secret, mini...)
	secret = append(secret, mini...)
	return secret, domain.HexBytes(mini), nil
}

func (fakeChain) BuildCall([]byte) (domain.Call, error) { return nil, errors.New("not used") }

func (fakeChain) BuildTransaction([]byte, uint64, uint64, uint64, []byte, domain.Call) (domain.SignedTransaction, error) {
	return nil, errors.New("not used")
}

func (fakeChain) EncodeTransaction(domain.SignedTransaction) ([]byte, error) {
	return nil, errors.New("not used")
}

func (fakeChain) ShardNumberFor(public []byte, shardCount uint16) (uint16, bool) {
	if shardCount == 0 || len(public) == 0 {
		return 0, false
	}
	return uint16(public[len(public)-1]) % shardCount, true
}

func (fakeChain) EncodeAddress(public []byte, network domain.Network) (domain.Address, error) {
	return domain.Address(fmt.Sprintf("net%d-%x", network, public)), nil
}

func (fakeChain) DecodeAddress(address domain.Address) (domain.HexBytes, domain.Network, error) {
	var raw string
	if _, err := fmt.Sscanf(string(address), "net0-%s", &raw); err != nil {
		return nil, 0, errors.New("bad address")
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return nil, 0, errors.New("bad address")
	}
	return b, domain.Mainnet, nil
}

var _ domain.Chain = fakeChain{}

func newService() *key.Service { return key.New(fakeChain{}) }

func secretFor(public byte) []byte {
	secret := make([]byte, domain.SecretKeyLen)
	secret[domain.PublicKeyLen-1] = public
	return secret
}

func TestPutGet_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.dat")
	svc := newService()
	secret := secretFor(0x2a)

	require.NoError(t, svc.Put(secret, "pw", path))

	got, err := svc.Get("pw", path)
	require.NoError(t, err)
	assert.Equal(t, domain.HexBytes(secret), got)
}

func TestPut_RejectsMalformedSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.dat")
	svc := newService()

	err := svc.Put([]byte{1, 2, 3}, "pw", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidKey)

	// Nothing may have been written.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerate_LandsOnRequestedShard(t *testing.T) {
	svc := newService()

	out, err := svc.Generate(2, 4)
	require.NoError(t, err)
	assert.Equal(t, uint16(2), out.ShardNum)
	assert.Equal(t, uint16(4), out.ShardCount)
	assert.Len(t, []byte(out.MiniSecretKey), domain.MiniSecretKeyLen)
	assert.Len(t, []byte(out.SecretKey), domain.SecretKeyLen)
	assert.Len(t, []byte(out.PublicKey), domain.PublicKeyLen)
	assert.EqualValues(t, 2, out.PublicKey[domain.PublicKeyLen-1]%4)
	assert.NotEmpty(t, out.Address)
	assert.NotEmpty(t, out.TestnetAddress)
}

func TestGenerate_RejectsBadShardArgs(t *testing.T) {
	svc := newService()

	_, err := svc.Generate(4, 4)
	assert.Error(t, err)

	_, err = svc.Generate(0, 0)
	assert.Error(t, err)
}

func TestInspectSecret(t *testing.T) {
	svc := newService()
	secret := secretFor(0x09) // 9 % 4 == 1, 9 % 8 == 1

	info, err := svc.InspectSecret(secret)
	require.NoError(t, err)
	assert.Equal(t, domain.HexBytes(secret), info.SecretKey)
	assert.Equal(t, domain.HexBytes(secret[:domain.PublicKeyLen]), info.PublicKey)
	assert.Equal(t, []key.ShardAssignment{
		{ShardNum: 1, ShardCount: 4},
		{ShardNum: 1, ShardCount: 8},
	}, info.Shard)
}

func TestInspectPublic_RejectsWrongLength(t *testing.T) {
	svc := newService()
	_, err := svc.InspectPublic([]byte{1, 2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidKey)
}

func TestInspectAddress_RoundTrip(t *testing.T) {
	svc := newService()
	secret := secretFor(0x07)

	fromSecret, err := svc.InspectSecret(secret)
	require.NoError(t, err)

	fromAddress, err := svc.InspectAddress(fromSecret.Address)
	require.NoError(t, err)
	assert.Equal(t, fromSecret.PublicKey, fromAddress.PublicKey)
	assert.Equal(t, fromSecret.Address, fromAddress.Address)
	assert.Empty(t, fromAddress.SecretKey)
}
