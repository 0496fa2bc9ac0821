package evm

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/ccip-bridge/internal/utils/abi"
	"github.com/smartcontractkit/ccip-bridge/sdk/evm/bindings"
	"github.com/smartcontractkit/ccip-bridge/types"
)

const (
	methodGetFee   = "getFee"
	methodCCIPSend = "ccipSend"

	evmAddressABI = `[{"type":"address"}]`
)

// Encoder converts CCIP messages into the calldata expected by the EVM router.
type Encoder struct{}

// NewEncoder returns a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodeReceiver encodes an EVM receiver the way the router expects it: abi.encode(address),
// i.e. the address left padded to 32 bytes.
func EncodeReceiver(receiver common.Address) ([]byte, error) {
	return abi.Encode(evmAddressABI, receiver)
}

// NewTokenTransferMessage builds a message transferring amount of token to receiver with no
// payload, paying the fee in the native asset. Execution hints are carried as V2 extra args.
func NewTokenTransferMessage(
	receiver, token common.Address, amount, gasLimit *big.Int, allowOutOfOrderExecution bool,
) (types.Message, error) {
	if err := checkUint256("amount", amount); err != nil {
		return types.Message{}, err
	}

	encodedReceiver, err := EncodeReceiver(receiver)
	if err != nil {
		return types.Message{}, fmt.Errorf("failed to encode receiver: %w", err)
	}

	extraArgs, err := EncodeExtraArgsV2(gasLimit, allowOutOfOrderExecution)
	if err != nil {
		return types.Message{}, err
	}

	return types.Message{
		Receiver: encodedReceiver,
		Data:     []byte{},
		TokenAmounts: []types.TokenAmount{
			{Token: token, Amount: new(big.Int).Set(amount)},
		},
		FeeToken:  common.Address{},
		ExtraArgs: extraArgs,
	}, nil
}

// ToGethMessage converts the message into the router binding struct, keeping the order of
// the token amounts.
func (e *Encoder) ToGethMessage(msg types.Message) (bindings.ClientEVM2AnyMessage, error) {
	tokenAmounts := make([]bindings.ClientEVMTokenAmount, 0, len(msg.TokenAmounts))
	for i, ta := range msg.TokenAmounts {
		if err := checkUint256(fmt.Sprintf("token amount %d", i), ta.Amount); err != nil {
			return bindings.ClientEVM2AnyMessage{}, err
		}

		tokenAmounts = append(tokenAmounts, bindings.ClientEVMTokenAmount{
			Token:  ta.Token,
			Amount: ta.Amount,
		})
	}

	data := msg.Data
	if data == nil {
		data = []byte{}
	}

	return bindings.ClientEVM2AnyMessage{
		Receiver:     msg.Receiver,
		Data:         data,
		TokenAmounts: tokenAmounts,
		FeeToken:     msg.FeeToken,
		ExtraArgs:    msg.ExtraArgs,
	}, nil
}

// FromGethMessage converts a router binding struct back into a message.
func FromGethMessage(msg bindings.ClientEVM2AnyMessage) types.Message {
	tokenAmounts := make([]types.TokenAmount, 0, len(msg.TokenAmounts))
	for _, ta := range msg.TokenAmounts {
		tokenAmounts = append(tokenAmounts, types.TokenAmount{
			Token:  ta.Token,
			Amount: ta.Amount,
		})
	}

	return types.Message{
		Receiver:     msg.Receiver,
		Data:         msg.Data,
		TokenAmounts: tokenAmounts,
		FeeToken:     msg.FeeToken,
		ExtraArgs:    msg.ExtraArgs,
	}
}

// EncodeCCIPSend returns the full calldata of router.ccipSend(dest, msg).
func (e *Encoder) EncodeCCIPSend(dest types.ChainSelector, msg types.Message) ([]byte, error) {
	return e.pack(methodCCIPSend, dest, msg)
}

// EncodeGetFee returns the full calldata of router.getFee(dest, msg).
func (e *Encoder) EncodeGetFee(dest types.ChainSelector, msg types.Message) ([]byte, error) {
	return e.pack(methodGetFee, dest, msg)
}

func (e *Encoder) pack(method string, dest types.ChainSelector, msg types.Message) ([]byte, error) {
	bindMsg, err := e.ToGethMessage(msg)
	if err != nil {
		return nil, err
	}

	data, err := bindings.RouterABI.Pack(method, uint64(dest), bindMsg)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	return data, nil
}
