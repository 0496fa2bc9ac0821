package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

func TestGetChainSelectorFamily(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    ChainSelector
		want    string
		wantErr string
	}{
		{
			name: "success: ethereum mainnet",
			give: ChainSelector(chainsel.ETHEREUM_MAINNET.Selector),
			want: chainsel.FamilyEVM,
		},
		{
			name: "success: bsc mainnet",
			give: ChainSelector(chainsel.BINANCE_SMART_CHAIN_MAINNET.Selector),
			want: chainsel.FamilyEVM,
		},
		{
			name:    "failure: solana is not a source family",
			give:    ChainSelector(chainsel.SOLANA_DEVNET.Selector),
			wantErr: "unsupported chain family: solana",
		},
		{
			name:    "failure: invalid chain selector",
			give:    0,
			wantErr: "chain family not found for selector 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := GetChainSelectorFamily(tt.give)

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestChainSelector_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5009297550715157269", ChainSelector(chainsel.ETHEREUM_MAINNET.Selector).String())
}
