package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TokenAmount is a single token transfer carried by a CCIP message.
type TokenAmount struct {
	Token  common.Address `json:"token"`
	Amount *big.Int       `json:"amount"`
}

// Message is the CCIP message accepted by the router's getFee and ccipSend methods.
//
// TokenAmounts keeps its order, the router iterates it as given when charging fees and
// pulling tokens. A zero FeeToken means the fee is paid in the native asset of the
// source chain.
type Message struct {
	Receiver     []byte         `json:"receiver"`
	Data         []byte         `json:"data"`
	TokenAmounts []TokenAmount  `json:"tokenAmounts"`
	FeeToken     common.Address `json:"feeToken"`
	ExtraArgs    []byte         `json:"extraArgs"`
}

// PaysNativeFee reports whether the message pays its fee in the native asset.
func (m Message) PaysNativeFee() bool {
	return m.FeeToken == (common.Address{})
}
