package sdk

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/ccip-bridge/types"
)

// Simulator dry runs a ccipSend without submitting a transaction.
//
// This is only required if the chain supports simulation.
type Simulator interface {
	SimulateCCIPSend(
		ctx context.Context,
		router common.Address,
		dest types.ChainSelector,
		msg types.Message,
		value *big.Int,
	) error
}
