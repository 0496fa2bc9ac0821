package config

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

// DefaultTokenSymbol is bridged when no token address is given.
const DefaultTokenSymbol = "USD1"

// SendFlags are the raw command line options of a transfer.
type SendFlags struct {
	Amount      string `mapstructure:"amount" validate:"required"`
	DstGasLimit string `mapstructure:"dstGasLimit" validate:"required"`
	Token       string `mapstructure:"token" validate:"omitempty,eth_addr"`
	Receiver    string `mapstructure:"receiver" validate:"omitempty,eth_addr"`
	Source      string `mapstructure:"source" validate:"required"`
	Dest        string `mapstructure:"dest" validate:"required,nefield=Source"`
	RPCURL      string `mapstructure:"rpc-url" validate:"omitempty,url"`
	Preflight   bool   `mapstructure:"preflight"`
	Wait        bool   `mapstructure:"wait"`
}

// SendOptions are the validated options of a transfer.
type SendOptions struct {
	Source      Network
	Dest        Network
	Token       common.Address
	Amount      *big.Int
	DstGasLimit *big.Int

	// Receiver is the zero address when the tokens go to the sender.
	Receiver common.Address

	// RPCURL overrides the source network RPC endpoint when set.
	RPCURL string

	Preflight bool
	Wait      bool
}

// ParseSendOptions validates flags against the network registry.
func ParseSendOptions(flags SendFlags, networks Networks) (SendOptions, error) {
	if err := validator.New().Struct(flags); err != nil {
		return SendOptions{}, fmt.Errorf("invalid send options: %w", err)
	}

	amount, err := ParseAmount("amount", flags.Amount, false)
	if err != nil {
		return SendOptions{}, err
	}

	dstGasLimit, err := ParseAmount("dstGasLimit", flags.DstGasLimit, true)
	if err != nil {
		return SendOptions{}, err
	}

	source, err := networks.Get(flags.Source)
	if err != nil {
		return SendOptions{}, err
	}

	dest, err := networks.Get(flags.Dest)
	if err != nil {
		return SendOptions{}, err
	}

	token := common.HexToAddress(flags.Token)
	if flags.Token == "" {
		var ok bool
		if token, ok = source.Token(DefaultTokenSymbol); !ok {
			return SendOptions{}, fmt.Errorf("network %s has no %s token, a token address is required",
				source.Name, DefaultTokenSymbol)
		}
	}

	var receiver common.Address
	if flags.Receiver != "" {
		receiver = common.HexToAddress(flags.Receiver)
	}

	return SendOptions{
		Source:      source,
		Dest:        dest,
		Token:       token,
		Amount:      amount,
		DstGasLimit: dstGasLimit,
		Receiver:    receiver,
		RPCURL:      flags.RPCURL,
		Preflight:   flags.Preflight,
		Wait:        flags.Wait,
	}, nil
}

const maxUint256BitLen = 256

// ParseAmount parses a base 10 integer that must fit in a uint256.
func ParseAmount(name, value string, allowZero bool) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(strings.TrimSpace(value), 10)
	if !ok {
		return nil, NewInvalidAmountError(name, value, "not a base 10 integer")
	}

	switch {
	case amount.Sign() < 0:
		return nil, NewInvalidAmountError(name, value, "must not be negative")
	case amount.Sign() == 0 && !allowZero:
		return nil, NewInvalidAmountError(name, value, "must be greater than zero")
	case amount.BitLen() > maxUint256BitLen:
		return nil, NewInvalidAmountError(name, value, "does not fit in a uint256")
	}

	return amount, nil
}
