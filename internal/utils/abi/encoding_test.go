package abi

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	uint256BoolABI = `[{"type":"uint256"},{"type":"bool"}]`
	addressABI     = `[{"type":"address"}]`
)

func Test_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		giveABI    string
		giveValues []any
		want       string
		wantErr    string
	}{
		{
			name:       "success: gas limit and ordering flag",
			giveABI:    uint256BoolABI,
			giveValues: []any{big.NewInt(200000), true},
			want: "0000000000000000000000000000000000000000000000000000000000030d40" +
				"0000000000000000000000000000000000000000000000000000000000000001",
		},
		{
			name:       "success: address is left padded to 32 bytes",
			giveABI:    addressABI,
			giveValues: []any{common.HexToAddress("0x6007723DAC9Bb830f622bB4561E8017f021b9fB5")},
			want:       "0000000000000000000000006007723dac9bb830f622bb4561e8017f021b9fb5",
		},
		{
			name:    "failure: invalid ABI string",
			giveABI: `[{"type":"invalid"}]`,
			wantErr: "invalid abi arguments",
		},
		{
			name:       "failure: missing values",
			giveABI:    uint256BoolABI,
			giveValues: []any{big.NewInt(1)},
			wantErr:    "argument count mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Encode(tt.giveABI, tt.giveValues...)

			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)

				wantBytes, err := hex.DecodeString(tt.want)
				require.NoError(t, err)
				assert.Equal(t, wantBytes, got)
			}
		})
	}
}

func Test_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		giveABI   string
		giveData  string
		want      []any
		wantError bool
	}{
		{
			name:    "success: gas limit and ordering flag",
			giveABI: uint256BoolABI,
			giveData: "0000000000000000000000000000000000000000000000000000000000030d40" +
				"0000000000000000000000000000000000000000000000000000000000000001",
			want: []any{big.NewInt(200000), true},
		},
		{
			name:     "success: decode address",
			giveABI:  addressABI,
			giveData: "0000000000000000000000008d0d000ee44948fc98c9b98a4fa4921476f08b0d",
			want:     []any{common.HexToAddress("0x8d0D000Ee44948FC98c9B98A4FA4921476f08B0d")},
		},
		{
			name:      "failure: data too short",
			giveABI:   `[{"type":"uint256"}]`,
			giveData:  "00000000000000000000000000000000",
			wantError: true,
		},
		{
			name:      "failure: empty data",
			giveABI:   `[{"type":"uint256"}]`,
			giveData:  "",
			wantError: true,
		},
		{
			name:      "failure: invalid ABI string",
			giveABI:   `[{"type":"invalid"}]`,
			giveData:  "000000000000000000000000000000000000000000000000000000000000001e",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := hex.DecodeString(tt.giveData)
			require.NoError(t, err)

			got, err := Decode(tt.giveABI, data)

			if tt.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
