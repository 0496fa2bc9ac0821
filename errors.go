package bridge

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/ccip-bridge/types"
)

// TransactionRevertedError is returned when a submitted transaction is mined but fails.
type TransactionRevertedError struct {
	Action string
	TxHash string
}

func (e *TransactionRevertedError) Error() string {
	return fmt.Sprintf("%s transaction %s reverted", e.Action, e.TxHash)
}

func NewTransactionRevertedError(action, txHash string) *TransactionRevertedError {
	return &TransactionRevertedError{Action: action, TxHash: txHash}
}

// UnsupportedLaneError is returned when the router cannot send to the destination chain.
type UnsupportedLaneError struct {
	Router common.Address
	Dest   types.ChainSelector
}

func (e *UnsupportedLaneError) Error() string {
	return fmt.Sprintf("router %s does not support destination chain %d", e.Router.Hex(), e.Dest)
}

func NewUnsupportedLaneError(router common.Address, dest types.ChainSelector) *UnsupportedLaneError {
	return &UnsupportedLaneError{Router: router, Dest: dest}
}

// InsufficientBalanceError is returned when the sender holds less of a token than the transfer needs.
type InsufficientBalanceError struct {
	Token    common.Address
	Balance  *big.Int
	Required *big.Int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance of token %s: have %s, need %s", e.Token.Hex(), e.Balance, e.Required)
}

func NewInsufficientBalanceError(token common.Address, balance, required *big.Int) *InsufficientBalanceError {
	return &InsufficientBalanceError{Token: token, Balance: balance, Required: required}
}
