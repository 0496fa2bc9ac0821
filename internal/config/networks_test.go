package config

import (
	"errors"
	"fmt"
	"testing"

	chainsel "github.com/smartcontractkit/chain-selectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/ccip-bridge/internal/testutils/chaintest"
)

func TestDefaultNetworks(t *testing.T) {
	t.Parallel()

	networks, err := DefaultNetworks()
	require.NoError(t, err)

	assert.Equal(t, []string{"bscMainnet", "ethereumMainnet"}, networks.Names())

	bsc, err := networks.Get("bscMainnet")
	require.NoError(t, err)
	assert.Equal(t, "bscMainnet", bsc.Name)
	assert.Equal(t, chaintest.Chain1Selector, bsc.ChainSelector)
	assert.Equal(t, "0x34B03Cb9086d7D758AC55af71584F81A598759FE", bsc.RouterAddress().Hex())
	assert.Equal(t, "https://bnb-mainnet.g.alchemy.com/v2/key", bsc.RPCURL("key"))

	token, ok := bsc.Token(DefaultTokenSymbol)
	require.True(t, ok)
	assert.Equal(t, "0x8d0D000Ee44948FC98c9B98A4FA4921476f08B0d", token.Hex())

	chainID, err := bsc.EVMChainID()
	require.NoError(t, err)
	assert.Equal(t, chaintest.Chain1EVMID, chainID)

	eth, err := networks.Get("ethereumMainnet")
	require.NoError(t, err)
	assert.Equal(t, chaintest.Chain2Selector, eth.ChainSelector)
	assert.Equal(t, "0x80226fc0Ee2b096224EeAc085Bb9a8cba1146f7D", eth.RouterAddress().Hex())
	assert.Equal(t, "https://eth-mainnet.g.alchemy.com/v2/key", eth.RPCURL("key"))

	_, ok = eth.Token(DefaultTokenSymbol)
	assert.False(t, ok)
}

func TestNetworks_GetUnknown(t *testing.T) {
	t.Parallel()

	networks, err := DefaultNetworks()
	require.NoError(t, err)

	_, err = networks.Get("arbitrumMainnet")
	require.EqualError(t, err, `unknown network "arbitrumMainnet", expected one of [bscMainnet ethereumMainnet]`)

	var unknownErr *UnknownNetworkError
	assert.True(t, errors.As(err, &unknownErr))
}

func TestParseNetworks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		wantErr string
	}{
		{
			name: "success",
			give: `{"sim": {"chainSelector": 3379446385462418246, "router": "0x0000000000000000000000000000000000000001", "rpcUrlTemplate": "http://localhost:8545/%s"}}`,
		},
		{
			name:    "failure: not json",
			give:    `{`,
			wantErr: "failed to decode networks",
		},
		{
			name:    "failure: bad router address",
			give:    `{"bad": {"chainSelector": 3379446385462418246, "router": "0x01", "rpcUrlTemplate": "http://localhost/%s"}}`,
			wantErr: "invalid network bad: Key: 'Network.Router' Error:Field validation for 'Router' failed on the 'eth_addr' tag",
		},
		{
			name:    "failure: template without key placeholder",
			give:    `{"bad": {"chainSelector": 3379446385462418246, "router": "0x0000000000000000000000000000000000000001", "rpcUrlTemplate": "http://localhost"}}`,
			wantErr: "failed on the 'contains' tag",
		},
		{
			name:    "failure: bad token address",
			give:    `{"bad": {"chainSelector": 3379446385462418246, "router": "0x0000000000000000000000000000000000000001", "rpcUrlTemplate": "http://localhost/%s", "tokens": {"USD1": "nope"}}}`,
			wantErr: "failed on the 'eth_addr' tag",
		},
		{
			name:    "failure: unknown selector",
			give:    `{"bad": {"chainSelector": 1, "router": "0x0000000000000000000000000000000000000001", "rpcUrlTemplate": "http://localhost/%s"}}`,
			wantErr: "invalid network bad: chain family not found for selector 1",
		},
		{
			name:    "failure: non evm selector",
			give: fmt.Sprintf(
				`{"bad": {"chainSelector": %d, "router": "0x0000000000000000000000000000000000000001", "rpcUrlTemplate": "http://localhost/%%s"}}`,
				chainsel.SOLANA_DEVNET.Selector,
			),
			wantErr: "invalid network bad: unsupported chain family: solana",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseNetworks([]byte(tt.give))

			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Len(t, got, 1)
			}
		})
	}
}
