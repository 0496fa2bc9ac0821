package evm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	geth_abi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	sdkerrors "github.com/smartcontractkit/ccip-bridge/sdk/errors"
	"github.com/smartcontractkit/ccip-bridge/sdk/evm/bindings"
	"github.com/smartcontractkit/ccip-bridge/types"
)

// DecodedCCIPSend is the structured form of router.ccipSend calldata.
type DecodedCCIPSend struct {
	DestinationChainSelector types.ChainSelector
	Message                  types.Message

	// Receiver is the EVM address held by Message.Receiver.
	Receiver common.Address

	// ExtraArgs is the decoded form of Message.ExtraArgs.
	ExtraArgs types.ExtraArgs
}

type decodedTokenAmountJSON struct {
	Token  string `json:"token"`
	Amount string `json:"amount"`
}

type decodedCCIPSendJSON struct {
	DestinationChainSelector string                   `json:"destinationChainSelector"`
	Receiver                 string                   `json:"receiver"`
	Data                     hexutil.Bytes            `json:"data"`
	TokenAmounts             []decodedTokenAmountJSON `json:"tokenAmounts"`
	FeeToken                 string                   `json:"feeToken"`
	ExtraArgs                struct {
		ExtraArgsParsed types.ExtraArgs `json:"extraArgsParsed"`
	} `json:"extraArgs"`
}

// MarshalJSON renders integers as decimal strings and addresses in checksummed form.
func (d DecodedCCIPSend) MarshalJSON() ([]byte, error) {
	out := decodedCCIPSendJSON{
		DestinationChainSelector: d.DestinationChainSelector.String(),
		Receiver:                 d.Receiver.Hex(),
		Data:                     hexutil.Bytes(d.Message.Data),
		TokenAmounts:             make([]decodedTokenAmountJSON, 0, len(d.Message.TokenAmounts)),
		FeeToken:                 d.Message.FeeToken.Hex(),
	}

	if out.Data == nil {
		out.Data = hexutil.Bytes{}
	}

	for _, ta := range d.Message.TokenAmounts {
		out.TokenAmounts = append(out.TokenAmounts, decodedTokenAmountJSON{
			Token:  ta.Token.Hex(),
			Amount: ta.Amount.String(),
		})
	}

	out.ExtraArgs.ExtraArgsParsed = d.ExtraArgs

	return json.Marshal(out)
}

// DecodeCCIPSend decodes the full calldata (selector included) of a router.ccipSend call.
func DecodeCCIPSend(calldata []byte) (*DecodedCCIPSend, error) {
	method := bindings.RouterABI.Methods[methodCCIPSend]

	if len(calldata) < len(method.ID) {
		return nil, sdkerrors.NewUnrecognizedCalldataError(methodCCIPSend,
			fmt.Sprintf("%d bytes is too short for a function selector", len(calldata)))
	}

	if !bytes.Equal(calldata[:len(method.ID)], method.ID) {
		return nil, sdkerrors.NewUnrecognizedCalldataError(methodCCIPSend,
			fmt.Sprintf("selector %s does not match %s", hexutil.Encode(calldata[:4]), hexutil.Encode(method.ID)))
	}

	args, err := method.Inputs.Unpack(calldata[len(method.ID):])
	if err != nil {
		return nil, sdkerrors.NewUnrecognizedCalldataError(methodCCIPSend, err.Error())
	}

	if len(args) != len(method.Inputs) {
		return nil, sdkerrors.NewUnrecognizedCalldataError(methodCCIPSend,
			fmt.Sprintf("expected %d arguments, got %d", len(method.Inputs), len(args)))
	}

	dest, ok := args[0].(uint64)
	if !ok {
		return nil, sdkerrors.NewUnrecognizedCalldataError(methodCCIPSend, "destination chain selector is not a uint64")
	}

	bindMsg, err := convertMessage(args[1])
	if err != nil {
		return nil, sdkerrors.NewUnrecognizedCalldataError(methodCCIPSend, err.Error())
	}

	msg := FromGethMessage(bindMsg)

	receiver, err := DecodeReceiver(msg.Receiver)
	if err != nil {
		return nil, err
	}

	extraArgs, err := DecodeExtraArgs(msg.ExtraArgs)
	if err != nil {
		return nil, err
	}

	return &DecodedCCIPSend{
		DestinationChainSelector: types.ChainSelector(dest),
		Message:                  msg,
		Receiver:                 receiver,
		ExtraArgs:                extraArgs,
	}, nil
}

// DecodeReceiver returns the EVM address held in the trailing 20 bytes of an encoded receiver.
func DecodeReceiver(receiver []byte) (common.Address, error) {
	if len(receiver) < common.AddressLength {
		return common.Address{}, fmt.Errorf("receiver %s is shorter than an address", hexutil.Encode(receiver))
	}

	return common.BytesToAddress(receiver[len(receiver)-common.AddressLength:]), nil
}

// convertMessage converts the anonymous struct produced by the ABI decoder into the
// binding type, the same way generated bindings convert call results.
func convertMessage(v any) (msg bindings.ClientEVM2AnyMessage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("message argument does not match Client.EVM2AnyMessage")
		}
	}()

	return *geth_abi.ConvertType(v, new(bindings.ClientEVM2AnyMessage)).(*bindings.ClientEVM2AnyMessage), nil
}
