package types

import (
	"encoding/json"
	"math/big"
)

// ExtraArgsVersion identifies the format of a message's extra args. The value is the
// string whose keccak256 prefix is the on-chain tag of the format.
type ExtraArgsVersion string

const (
	ExtraArgsVersionV1 ExtraArgsVersion = "CCIP EVMExtraArgsV1"
	ExtraArgsVersionV2 ExtraArgsVersion = "CCIP EVMExtraArgsV2"
)

// ExtraArgs is the decoded form of a message's extra args.
//
// AllowOutOfOrderExecution is nil for V1, which has no such field.
type ExtraArgs struct {
	Version                  ExtraArgsVersion
	GasLimit                 *big.Int
	AllowOutOfOrderExecution *bool
}

// MarshalJSON renders the gas limit as a decimal string.
func (e ExtraArgs) MarshalJSON() ([]byte, error) {
	var gasLimit *string
	if e.GasLimit != nil {
		s := e.GasLimit.String()
		gasLimit = &s
	}

	return json.Marshal(struct {
		Version                  ExtraArgsVersion `json:"version"`
		GasLimit                 *string          `json:"gasLimit"`
		AllowOutOfOrderExecution *bool            `json:"allowOutOfOrderExecution"`
	}{
		Version:                  e.Version,
		GasLimit:                 gasLimit,
		AllowOutOfOrderExecution: e.AllowOutOfOrderExecution,
	})
}
