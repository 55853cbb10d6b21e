package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shardkit/internal/chain"
	"shardkit/internal/domain"
)

type nopChain struct {
	domain.Chain
}

func TestRegisterLookup(t *testing.T) {
	driver := &nopChain{}
	chain.Register("testnet-a", driver)

	got, err := chain.Lookup("testnet-a")
	require.NoError(t, err)
	assert.Same(t, domain.Chain(driver), got)

	assert.Contains(t, chain.Drivers(), "testnet-a")
}

func TestLookup_Unregistered(t *testing.T) {
	_, err := chain.Lookup("no-such-driver")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-driver")
}

func TestRegister_Duplicate(t *testing.T) {
	chain.Register("testnet-b", &nopChain{})
	assert.Panics(t, func() { chain.Register("testnet-b", &nopChain{}) })
}

func TestRegister_Nil(t *testing.T) {
	assert.Panics(t, func() { chain.Register("testnet-c", nil) })
}
