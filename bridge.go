// Package bridge sends tokens between chains through Chainlink CCIP routers and decodes the
// calldata of such transfers.
package bridge

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/ccip-bridge/sdk"
	"github.com/smartcontractkit/ccip-bridge/types"
)

// SendRequest describes a single CCIP message to send.
type SendRequest struct {
	Dest    types.ChainSelector
	Message types.Message

	// Preflight checks the lane and the sender's token balances before quoting the fee, and
	// dry runs ccipSend before submitting it when the bridge has a simulator.
	Preflight bool

	// Wait blocks until the ccipSend transaction is mined and fails if it reverted.
	Wait bool
}

// SendResult holds the transactions submitted by Send.
type SendResult struct {
	Fee       *big.Int
	Approvals []types.TransactionResult
	Send      types.TransactionResult

	// Receipt is only set when the request asked to wait.
	Receipt *types.TransactionReceipt
}

// Bridge sends CCIP messages through a router on the chain its executor is connected to.
type Bridge struct {
	executor  sdk.Executor
	simulator sdk.Simulator
	router    common.Address
}

// NewBridge creates a Bridge sending through the router at the given address.
func NewBridge(executor sdk.Executor, router common.Address) *Bridge {
	return &Bridge{
		executor: executor,
		router:   router,
	}
}

// WithSimulator sets the simulator used to dry run ccipSend on preflight.
func (b *Bridge) WithSimulator(simulator sdk.Simulator) *Bridge {
	b.simulator = simulator
	return b
}

// Send quotes the fee of the message, approves the router to pull whatever the sender has
// not already allowed, then submits ccipSend. The steps run in order and the first failure
// aborts the transfer.
func (b *Bridge) Send(ctx context.Context, req SendRequest) (*SendResult, error) {
	lggr := sdk.LoggerFrom(ctx)
	msg := req.Message

	required := requiredAmounts(msg, nil)

	if req.Preflight {
		if err := b.preflight(ctx, req.Dest, required); err != nil {
			return nil, err
		}
	}

	fee, err := b.executor.GetFee(ctx, b.router, req.Dest, msg)
	if err != nil {
		return nil, err
	}

	if msg.PaysNativeFee() {
		lggr.Infof("CCIP fee in native token: %s", FormatNative(fee))
	} else {
		lggr.Infof("CCIP fee: %s", b.formatTokenAmount(ctx, msg.FeeToken, fee))
	}

	result := &SendResult{Fee: fee}

	for _, ta := range requiredAmounts(msg, fee) {
		approval, err := b.ensureAllowance(ctx, ta.Token, ta.Amount)
		if err != nil {
			return nil, err
		}

		if approval != nil {
			result.Approvals = append(result.Approvals, *approval)
		}
	}

	value := big.NewInt(0)
	if msg.PaysNativeFee() {
		value = fee
	}

	if req.Preflight && b.simulator != nil {
		if err := b.simulator.SimulateCCIPSend(ctx, b.router, req.Dest, msg, value); err != nil {
			return nil, err
		}
	}

	lggr.Infof("Sending message to chain %d", req.Dest)

	send, err := b.executor.CCIPSend(ctx, b.router, req.Dest, msg, value)
	if err != nil {
		return nil, err
	}
	result.Send = send

	lggr.Infof("Sent token with CCIP successfully, txHash=%s", send.Hash)

	if req.Wait {
		receipt, err := b.waitSuccess(ctx, "ccipSend", send.Hash)
		if err != nil {
			return nil, err
		}
		result.Receipt = &receipt
	}

	return result, nil
}

// preflight fails when the router has no lane to dest or the sender cannot cover the
// transferred amounts.
func (b *Bridge) preflight(ctx context.Context, dest types.ChainSelector, required []types.TokenAmount) error {
	supported, err := b.executor.IsChainSupported(ctx, b.router, dest)
	if err != nil {
		return err
	}

	if !supported {
		return NewUnsupportedLaneError(b.router, dest)
	}

	owner := b.executor.Address()
	for _, ta := range required {
		balance, err := b.executor.BalanceOf(ctx, ta.Token, owner)
		if err != nil {
			return err
		}

		if balance.Cmp(ta.Amount) < 0 {
			return NewInsufficientBalanceError(ta.Token, balance, ta.Amount)
		}
	}

	return nil
}

// ensureAllowance approves the router for exactly amount when the current allowance is lower,
// and waits for the approval to be mined. It returns nil when no approval was needed.
func (b *Bridge) ensureAllowance(
	ctx context.Context, token common.Address, amount *big.Int,
) (*types.TransactionResult, error) {
	lggr := sdk.LoggerFrom(ctx)
	owner := b.executor.Address()

	allowance, err := b.executor.Allowance(ctx, token, owner, b.router)
	if err != nil {
		return nil, err
	}

	if allowance.Cmp(amount) >= 0 {
		lggr.Debugf("Allowance of %s on %s covers %s", allowance, token.Hex(), amount)
		return nil, nil //nolint:nilnil
	}

	lggr.Infof("Approving %s to router %s...", b.formatTokenAmount(ctx, token, amount), b.router.Hex())

	approval, err := b.executor.Approve(ctx, token, b.router, amount)
	if err != nil {
		return nil, err
	}

	if _, err := b.waitSuccess(ctx, "approve", approval.Hash); err != nil {
		return nil, err
	}

	lggr.Infof("Approved token successfully, txHash=%s", approval.Hash)

	return &approval, nil
}

func (b *Bridge) waitSuccess(ctx context.Context, action, txHash string) (types.TransactionReceipt, error) {
	receipt, err := b.executor.WaitMined(ctx, txHash)
	if err != nil {
		return types.TransactionReceipt{}, fmt.Errorf("failed waiting for %s transaction %s: %w", action, txHash, err)
	}

	if !receipt.Success {
		return types.TransactionReceipt{}, NewTransactionRevertedError(action, txHash)
	}

	return receipt, nil
}

// formatTokenAmount renders amount in whole units followed by the token symbol, falling back
// to base units and the token address when the token does not expose its metadata.
func (b *Bridge) formatTokenAmount(ctx context.Context, token common.Address, amount *big.Int) string {
	metadata, err := b.executor.TokenMetadata(ctx, token)
	if err != nil {
		sdk.LoggerFrom(ctx).Debugf("Token metadata of %s unavailable: %v", token.Hex(), err)
		return amount.String() + " " + token.Hex()
	}

	return FormatUnits(amount, metadata.Decimals) + " " + metadata.Symbol
}

// requiredAmounts sums the amounts the router will pull per token, in order of first
// appearance. A fee paid in an ERC20 token is added to that token's total.
func requiredAmounts(msg types.Message, fee *big.Int) []types.TokenAmount {
	var out []types.TokenAmount
	index := make(map[common.Address]int)

	add := func(token common.Address, amount *big.Int) {
		if i, ok := index[token]; ok {
			out[i].Amount.Add(out[i].Amount, amount)
			return
		}

		index[token] = len(out)
		out = append(out, types.TokenAmount{Token: token, Amount: new(big.Int).Set(amount)})
	}

	for _, ta := range msg.TokenAmounts {
		add(ta.Token, ta.Amount)
	}

	if fee != nil && !msg.PaysNativeFee() {
		add(msg.FeeToken, fee)
	}

	return out
}
