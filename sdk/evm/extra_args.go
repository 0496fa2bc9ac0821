package evm

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/smartcontractkit/ccip-bridge/internal/utils/abi"
	sdkerrors "github.com/smartcontractkit/ccip-bridge/sdk/errors"
	"github.com/smartcontractkit/ccip-bridge/types"
)

const (
	extraArgsV1ABI = `[{"name":"gasLimit","type":"uint256"}]`
	extraArgsV2ABI = `[{"name":"gasLimit","type":"uint256"},{"name":"allowOutOfOrderExecution","type":"bool"}]`
)

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

var (
	// bytes4(keccak256("CCIP EVMExtraArgsV1"))
	EVMExtraArgsV1Tag = hexutil.MustDecode("0x97a657c9")

	// bytes4(keccak256("CCIP EVMExtraArgsV2"))
	EVMExtraArgsV2Tag = hexutil.MustDecode("0x181dcf10")
)

// EncodeExtraArgsV1 returns the V1 tag followed by abi.encode(gasLimit).
func EncodeExtraArgsV1(gasLimit *big.Int) ([]byte, error) {
	if err := checkUint256("gas limit", gasLimit); err != nil {
		return nil, err
	}

	body, err := abi.Encode(extraArgsV1ABI, gasLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extra args v1: %w", err)
	}

	return append(bytes.Clone(EVMExtraArgsV1Tag), body...), nil
}

// EncodeExtraArgsV2 returns the V2 tag followed by abi.encode(gasLimit, allowOutOfOrderExecution).
// A zero gas limit lets the destination chain apply its default.
func EncodeExtraArgsV2(gasLimit *big.Int, allowOutOfOrderExecution bool) ([]byte, error) {
	if err := checkUint256("gas limit", gasLimit); err != nil {
		return nil, err
	}

	body, err := abi.Encode(extraArgsV2ABI, gasLimit, allowOutOfOrderExecution)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extra args v2: %w", err)
	}

	return append(bytes.Clone(EVMExtraArgsV2Tag), body...), nil
}

// DecodeExtraArgs decodes extra args according to the format named by their 4 byte tag.
func DecodeExtraArgs(extraArgs []byte) (types.ExtraArgs, error) {
	if len(extraArgs) < len(EVMExtraArgsV2Tag) {
		return types.ExtraArgs{}, sdkerrors.NewUnknownExtraArgsTagError(extraArgs)
	}

	tag, body := extraArgs[:4], extraArgs[4:]

	switch {
	case bytes.Equal(tag, EVMExtraArgsV2Tag):
		values, err := abi.Decode(extraArgsV2ABI, body)
		if err != nil {
			return types.ExtraArgs{}, fmt.Errorf("failed to decode extra args v2: %w", err)
		}

		gasLimit, _ := values[0].(*big.Int)
		allowOutOfOrderExecution, _ := values[1].(bool)

		return types.ExtraArgs{
			Version:                  types.ExtraArgsVersionV2,
			GasLimit:                 gasLimit,
			AllowOutOfOrderExecution: &allowOutOfOrderExecution,
		}, nil
	case bytes.Equal(tag, EVMExtraArgsV1Tag):
		values, err := abi.Decode(extraArgsV1ABI, body)
		if err != nil {
			return types.ExtraArgs{}, fmt.Errorf("failed to decode extra args v1: %w", err)
		}

		gasLimit, _ := values[0].(*big.Int)

		return types.ExtraArgs{
			Version:  types.ExtraArgsVersionV1,
			GasLimit: gasLimit,
		}, nil
	default:
		return types.ExtraArgs{}, sdkerrors.NewUnknownExtraArgsTagError(extraArgs)
	}
}

// checkUint256 rejects values the ABI encoder would silently wrap.
func checkUint256(name string, v *big.Int) error {
	if v == nil {
		return fmt.Errorf("%s is required", name)
	}

	if v.Sign() < 0 || v.Cmp(maxUint256) > 0 {
		return fmt.Errorf("%s %s is out of uint256 range", name, v)
	}

	return nil
}
