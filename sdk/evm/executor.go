package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/smartcontractkit/ccip-bridge/internal/utils/safecast"
	"github.com/smartcontractkit/ccip-bridge/sdk"
	"github.com/smartcontractkit/ccip-bridge/sdk/evm/bindings"
	"github.com/smartcontractkit/ccip-bridge/types"
)

var _ sdk.Executor = (*Executor)(nil)

// DefaultPollInterval is how often WaitMined asks for a receipt.
const DefaultPollInterval = time.Second

// Executor is an Executor implementation for EVM chains, submitting approvals and ccipSend
// calls signed by auth.
type Executor struct {
	*Encoder
	*Inspector
	auth         *bind.TransactOpts
	pollInterval time.Duration
}

// NewExecutor creates a new Executor for EVM chains
func NewExecutor(encoder *Encoder, client ContractDeployBackend, auth *bind.TransactOpts) *Executor {
	return &Executor{
		Encoder:      encoder,
		Inspector:    NewInspector(client),
		auth:         auth,
		pollInterval: DefaultPollInterval,
	}
}

// WithPollInterval sets how often WaitMined polls for a receipt.
func (e *Executor) WithPollInterval(interval time.Duration) *Executor {
	e.pollInterval = interval
	return e
}

func (e *Executor) Address() common.Address {
	return e.auth.From
}

// Approve sends token.approve(spender, amount) with the estimated gas increased by
// GasLimitBufferPercent.
func (e *Executor) Approve(
	ctx context.Context, token, spender common.Address, amount *big.Int,
) (types.TransactionResult, error) {
	if err := checkUint256("approval amount", amount); err != nil {
		return types.TransactionResult{}, err
	}

	data, err := bindings.ERC20ABI.Pack("approve", spender, amount)
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to pack approve: %w", err)
	}

	opts, err := e.transactOpts(ctx, token, data, nil)
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to estimate gas for approve: %w", err)
	}

	tx, err := bindings.NewERC20(token, e.client).Approve(opts, spender, amount)
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to send approve: %w", err)
	}

	return toTransactionResult(tx), nil
}

// CCIPSend sends router.ccipSend(dest, msg) carrying value, with the estimated gas increased
// by GasLimitBufferPercent.
func (e *Executor) CCIPSend(
	ctx context.Context,
	router common.Address,
	dest types.ChainSelector,
	msg types.Message,
	value *big.Int,
) (types.TransactionResult, error) {
	if e.Encoder == nil {
		return types.TransactionResult{}, errors.New("Executor was created without an encoder")
	}

	if value == nil {
		value = big.NewInt(0)
	}

	bindMsg, err := e.ToGethMessage(msg)
	if err != nil {
		return types.TransactionResult{}, err
	}

	data, err := e.EncodeCCIPSend(dest, msg)
	if err != nil {
		return types.TransactionResult{}, err
	}

	opts, err := e.transactOpts(ctx, router, data, value)
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to estimate gas for ccipSend: %w", err)
	}

	tx, err := bindings.NewRouter(router, e.client).CcipSend(opts, uint64(dest), bindMsg)
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to send ccipSend: %w", err)
	}

	return toTransactionResult(tx), nil
}

// WaitMined polls for the receipt of txHash until it is available or ctx is done.
func (e *Executor) WaitMined(ctx context.Context, txHash string) (types.TransactionReceipt, error) {
	lggr := sdk.LoggerFrom(ctx)

	queryTicker := time.NewTicker(e.pollInterval)
	defer queryTicker.Stop()

	for {
		receipt, err := e.client.TransactionReceipt(ctx, common.HexToHash(txHash))
		if err == nil {
			return toTransactionReceipt(receipt), nil
		}

		if errors.Is(err, ethereum.NotFound) {
			lggr.Debugf("Transaction %s not yet mined", txHash)
		} else {
			lggr.Debugf("Receipt retrieval for %s failed: %v", txHash, err)
		}

		select {
		case <-ctx.Done():
			return types.TransactionReceipt{}, ctx.Err()
		case <-queryTicker.C:
		}
	}
}

// transactOpts copies auth for a single call to `to`, fixing the gas limit to the buffered
// estimate.
func (e *Executor) transactOpts(
	ctx context.Context, to common.Address, data []byte, value *big.Int,
) (*bind.TransactOpts, error) {
	gas, err := e.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  e.auth.From,
		To:    &to,
		Value: value,
		Data:  data,
	})
	if err != nil {
		return nil, err
	}

	gasLimit, err := applyGasBuffer(gas)
	if err != nil {
		return nil, err
	}

	opts := *e.auth
	opts.Context = ctx
	opts.GasLimit = gasLimit
	opts.Value = value

	return &opts, nil
}

func toTransactionReceipt(receipt *gethtypes.Receipt) types.TransactionReceipt {
	result := types.TransactionReceipt{
		Hash:    receipt.TxHash.Hex(),
		GasUsed: receipt.GasUsed,
		Success: receipt.Status == gethtypes.ReceiptStatusSuccessful,
	}
	if block, err := safecast.BigToUint64(receipt.BlockNumber); err == nil {
		result.BlockNumber = block
	}

	return result
}

func toTransactionResult(tx *gethtypes.Transaction) types.TransactionResult {
	return types.TransactionResult{
		Hash:           tx.Hash().Hex(),
		RawTransaction: tx,
	}
}
