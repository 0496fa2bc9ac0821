package sdk

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/ccip-bridge/types"
)

// Executor is an interface for submitting the transactions of a CCIP transfer.
//
// This must be implemented by any chain messages are sent from.
type Executor interface {
	Inspector

	// Address returns the account transactions are sent from.
	Address() common.Address

	// Approve grants spender an allowance of exactly amount on token.
	Approve(ctx context.Context, token, spender common.Address, amount *big.Int) (types.TransactionResult, error)

	// CCIPSend submits msg to the router, transferring value along with the call.
	CCIPSend(
		ctx context.Context,
		router common.Address,
		dest types.ChainSelector,
		msg types.Message,
		value *big.Int,
	) (types.TransactionResult, error)

	// WaitMined blocks until the transaction is included in a block.
	WaitMined(ctx context.Context, txHash string) (types.TransactionReceipt, error)
}
