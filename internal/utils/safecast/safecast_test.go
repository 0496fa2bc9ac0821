package safecast

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Uint64ToInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    uint64
		want    int64
		wantErr bool
	}{
		{name: "BSC chain id", give: 56, want: 56},
		{name: "Max int64", give: math.MaxInt64, want: math.MaxInt64},
		{name: "Exceeds int64", give: math.MaxInt64 + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Uint64ToInt64(tt.give)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_BigToUint64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    *big.Int
		want    uint64
		wantErr string
	}{
		{name: "Within range", give: big.NewInt(110000), want: 110000},
		{name: "Max uint64", give: new(big.Int).SetUint64(math.MaxUint64), want: math.MaxUint64},
		{name: "Nil", give: nil, wantErr: "value is nil, cannot convert to uint64"},
		{name: "Negative", give: big.NewInt(-5), wantErr: "value -5 exceeds uint64 range"},
		{
			name:    "Exceeds uint64",
			give:    new(big.Int).Lsh(big.NewInt(1), 64),
			wantErr: "value 18446744073709551616 exceeds uint64 range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := BigToUint64(tt.give)

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
