package evm

import (
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	chainsel "github.com/smartcontractkit/chain-selectors"

	sdkerrors "github.com/smartcontractkit/ccip-bridge/sdk/errors"
	"github.com/smartcontractkit/ccip-bridge/types"
)

const (
	// GasLimitBufferPercent is added on top of every gas estimate before submitting.
	GasLimitBufferPercent = 10
)

type ContractDeployBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// applyGasBuffer returns gas increased by GasLimitBufferPercent, rounded down.
func applyGasBuffer(gas uint64) (uint64, error) {
	buffer := gas / 100 * GasLimitBufferPercent
	buffer += gas % 100 * GasLimitBufferPercent / 100

	if gas > math.MaxUint64-buffer {
		return 0, fmt.Errorf("gas estimate %d overflows with a %d%% buffer", gas, GasLimitBufferPercent)
	}

	return gas + buffer, nil
}

// GetEVMChainID returns the EVM chain ID for the given chain selector.
func GetEVMChainID(sel types.ChainSelector) (uint64, error) {
	chain, exists := chainsel.ChainBySelector(uint64(sel))
	if !exists {
		return 0, sdkerrors.NewInvalidChainIDError(sel)
	}

	return chain.EvmChainID, nil
}
