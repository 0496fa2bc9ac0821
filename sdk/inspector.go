package sdk

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/ccip-bridge/types"
)

// Inspector is an interface for reading the on chain state a CCIP transfer depends on.
type Inspector interface {
	// GetFee quotes the fee the router charges for sending msg to dest, denominated in
	// msg.FeeToken (the native asset when it is the zero address).
	GetFee(ctx context.Context, router common.Address, dest types.ChainSelector, msg types.Message) (*big.Int, error)
	IsChainSupported(ctx context.Context, router common.Address, dest types.ChainSelector) (bool, error)
	Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error)
	BalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error)
	TokenMetadata(ctx context.Context, token common.Address) (types.TokenMetadata, error)
}
