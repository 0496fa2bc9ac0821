package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/ccip-bridge/sdk"
	"github.com/smartcontractkit/ccip-bridge/sdk/evm/bindings"
	"github.com/smartcontractkit/ccip-bridge/types"
)

var _ sdk.Inspector = (*Inspector)(nil)

// Inspector is an Inspector implementation for EVM chains, giving access to the state of the
// router and of the tokens being bridged.
type Inspector struct {
	encoder *Encoder
	client  ContractDeployBackend
}

// NewInspector creates a new Inspector for evm chains.
func NewInspector(client ContractDeployBackend) *Inspector {
	return &Inspector{
		encoder: NewEncoder(),
		client:  client,
	}
}

// GetFee quotes the fee for sending msg to dest through the router.
func (i *Inspector) GetFee(
	ctx context.Context, router common.Address, dest types.ChainSelector, msg types.Message,
) (*big.Int, error) {
	bindMsg, err := i.encoder.ToGethMessage(msg)
	if err != nil {
		return nil, err
	}

	fee, err := bindings.NewRouter(router, i.client).GetFee(&bind.CallOpts{Context: ctx}, uint64(dest), bindMsg)
	if err != nil {
		return nil, fmt.Errorf("failed to get fee from router %s: %w", router.Hex(), err)
	}

	return fee, nil
}

// IsChainSupported reports whether the router has a lane to dest.
func (i *Inspector) IsChainSupported(ctx context.Context, router common.Address, dest types.ChainSelector) (bool, error) {
	supported, err := bindings.NewRouter(router, i.client).IsChainSupported(&bind.CallOpts{Context: ctx}, uint64(dest))
	if err != nil {
		return false, fmt.Errorf("failed to check support for chain %d on router %s: %w", dest, router.Hex(), err)
	}

	return supported, nil
}

func (i *Inspector) Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error) {
	allowance, err := bindings.NewERC20(token, i.client).Allowance(&bind.CallOpts{Context: ctx}, owner, spender)
	if err != nil {
		return nil, fmt.Errorf("failed to get allowance of %s on token %s: %w", spender.Hex(), token.Hex(), err)
	}

	return allowance, nil
}

func (i *Inspector) BalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	balance, err := bindings.NewERC20(token, i.client).BalanceOf(&bind.CallOpts{Context: ctx}, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance of %s on token %s: %w", owner.Hex(), token.Hex(), err)
	}

	return balance, nil
}

// TokenMetadata returns the symbol and decimals of an ERC20 token.
func (i *Inspector) TokenMetadata(ctx context.Context, token common.Address) (types.TokenMetadata, error) {
	erc20 := bindings.NewERC20(token, i.client)
	opts := &bind.CallOpts{Context: ctx}

	symbol, err := erc20.Symbol(opts)
	if err != nil {
		return types.TokenMetadata{}, fmt.Errorf("failed to get symbol of token %s: %w", token.Hex(), err)
	}

	decimals, err := erc20.Decimals(opts)
	if err != nil {
		return types.TokenMetadata{}, fmt.Errorf("failed to get decimals of token %s: %w", token.Hex(), err)
	}

	return types.TokenMetadata{Symbol: symbol, Decimals: decimals}, nil
}
