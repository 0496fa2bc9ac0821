package abi

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Encode is the equivalent of abi.encode. abiStr is a JSON list of argument
// definitions, e.g. `[{"type":"uint256"},{"type":"bool"}]`.
// See a full set of examples https://github.com/ethereum/go-ethereum/blob/420b78659bef661a83c5c442121b13f13288c09f/accounts/abi/packing_test.go#L31
func Encode(abiStr string, values ...any) ([]byte, error) {
	args, err := parseArguments(abiStr)
	if err != nil {
		return nil, err
	}

	return args.Pack(values...)
}

// Decode is the equivalent of abi.decode.
func Decode(abiStr string, data []byte) ([]any, error) {
	args, err := parseArguments(abiStr)
	if err != nil {
		return nil, err
	}

	return args.Unpack(data)
}

func parseArguments(abiStr string) (abi.Arguments, error) {
	var args abi.Arguments
	if err := json.Unmarshal([]byte(abiStr), &args); err != nil {
		return nil, fmt.Errorf("invalid abi arguments %s: %w", abiStr, err)
	}

	return args, nil
}
