package sdkerrors

import (
	"encoding/hex"
	"fmt"

	"github.com/smartcontractkit/ccip-bridge/types"
)

type InvalidChainIDError struct {
	ReceivedChainID types.ChainSelector
}

func (e *InvalidChainIDError) Error() string {
	return fmt.Sprintf("invalid chain ID: %v", e.ReceivedChainID)
}

func NewInvalidChainIDError(receivedChainID types.ChainSelector) *InvalidChainIDError {
	return &InvalidChainIDError{ReceivedChainID: receivedChainID}
}

// UnknownExtraArgsTagError is returned when extra args do not start with a known format tag.
type UnknownExtraArgsTagError struct {
	ExtraArgs []byte
}

func (e *UnknownExtraArgsTagError) Error() string {
	if len(e.ExtraArgs) < 4 {
		return fmt.Sprintf("unrecognized extra args format: %d bytes is too short for a tag", len(e.ExtraArgs))
	}

	return "unrecognized extra args format: unknown tag 0x" + hex.EncodeToString(e.ExtraArgs[:4])
}

func NewUnknownExtraArgsTagError(extraArgs []byte) *UnknownExtraArgsTagError {
	return &UnknownExtraArgsTagError{ExtraArgs: extraArgs}
}

// UnrecognizedCalldataError is returned when calldata is not a call to the expected method.
type UnrecognizedCalldataError struct {
	Method string
	Reason string
}

func (e *UnrecognizedCalldataError) Error() string {
	return fmt.Sprintf("malformed or unrecognized calldata for %s: %s", e.Method, e.Reason)
}

func NewUnrecognizedCalldataError(method, reason string) *UnrecognizedCalldataError {
	return &UnrecognizedCalldataError{Method: method, Reason: reason}
}
