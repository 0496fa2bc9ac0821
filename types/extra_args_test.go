package types

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtraArgs_MarshalJSON(t *testing.T) {
	t.Parallel()

	allow := true

	tests := []struct {
		name string
		give ExtraArgs
		want string
	}{
		{
			name: "v2",
			give: ExtraArgs{
				Version:                  ExtraArgsVersionV2,
				GasLimit:                 big.NewInt(0),
				AllowOutOfOrderExecution: &allow,
			},
			want: `{"version":"CCIP EVMExtraArgsV2","gasLimit":"0","allowOutOfOrderExecution":true}`,
		},
		{
			name: "v1 has no ordering flag",
			give: ExtraArgs{
				Version:  ExtraArgsVersionV1,
				GasLimit: big.NewInt(200000),
			},
			want: `{"version":"CCIP EVMExtraArgsV1","gasLimit":"200000","allowOutOfOrderExecution":null}`,
		},
		{
			name: "uint256 gas limit stays exact",
			give: ExtraArgs{
				Version:  ExtraArgsVersionV1,
				GasLimit: new(big.Int).Lsh(big.NewInt(1), 200),
			},
			want: `{"version":"CCIP EVMExtraArgsV1","gasLimit":"1606938044258990275541962092341162602522202993782792835301376","allowOutOfOrderExecution":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(tt.give)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestMessage_PaysNativeFee(t *testing.T) {
	t.Parallel()

	assert.True(t, Message{}.PaysNativeFee())
	assert.False(t, Message{FeeToken: [20]byte{1}}.PaysNativeFee())
}
