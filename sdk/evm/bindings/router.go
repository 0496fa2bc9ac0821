// Package bindings contains go-ethereum contract bindings for the CCIP contracts used by
// the bridge: the router and ERC20 tokens.
package bindings

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

// RouterABIJSON is the subset of the CCIP Router ABI used by the bridge.
const RouterABIJSON = `[
	{
		"type": "function",
		"name": "getFee",
		"stateMutability": "view",
		"inputs": [
			{"name": "destinationChainSelector", "type": "uint64", "internalType": "uint64"},
			{"name": "message", "type": "tuple", "internalType": "struct Client.EVM2AnyMessage", "components": [
				{"name": "receiver", "type": "bytes", "internalType": "bytes"},
				{"name": "data", "type": "bytes", "internalType": "bytes"},
				{"name": "tokenAmounts", "type": "tuple[]", "internalType": "struct Client.EVMTokenAmount[]", "components": [
					{"name": "token", "type": "address", "internalType": "address"},
					{"name": "amount", "type": "uint256", "internalType": "uint256"}
				]},
				{"name": "feeToken", "type": "address", "internalType": "address"},
				{"name": "extraArgs", "type": "bytes", "internalType": "bytes"}
			]}
		],
		"outputs": [{"name": "fee", "type": "uint256", "internalType": "uint256"}]
	},
	{
		"type": "function",
		"name": "ccipSend",
		"stateMutability": "payable",
		"inputs": [
			{"name": "destinationChainSelector", "type": "uint64", "internalType": "uint64"},
			{"name": "message", "type": "tuple", "internalType": "struct Client.EVM2AnyMessage", "components": [
				{"name": "receiver", "type": "bytes", "internalType": "bytes"},
				{"name": "data", "type": "bytes", "internalType": "bytes"},
				{"name": "tokenAmounts", "type": "tuple[]", "internalType": "struct Client.EVMTokenAmount[]", "components": [
					{"name": "token", "type": "address", "internalType": "address"},
					{"name": "amount", "type": "uint256", "internalType": "uint256"}
				]},
				{"name": "feeToken", "type": "address", "internalType": "address"},
				{"name": "extraArgs", "type": "bytes", "internalType": "bytes"}
			]}
		],
		"outputs": [{"name": "", "type": "bytes32", "internalType": "bytes32"}]
	},
	{
		"type": "function",
		"name": "isChainSupported",
		"stateMutability": "view",
		"inputs": [{"name": "chainSelector", "type": "uint64", "internalType": "uint64"}],
		"outputs": [{"name": "supported", "type": "bool", "internalType": "bool"}]
	}
]`

// RouterABI is the parsed form of RouterABIJSON.
var RouterABI = mustParseABI(RouterABIJSON)

// ClientEVMTokenAmount mirrors Client.EVMTokenAmount.
type ClientEVMTokenAmount struct {
	Token  common.Address
	Amount *big.Int
}

// ClientEVM2AnyMessage mirrors Client.EVM2AnyMessage.
type ClientEVM2AnyMessage struct {
	Receiver     []byte
	Data         []byte
	TokenAmounts []ClientEVMTokenAmount
	FeeToken     common.Address
	ExtraArgs    []byte
}

// Router is a binding of a deployed CCIP Router contract.
type Router struct {
	contract *bind.BoundContract
}

// NewRouter binds the router deployed at address.
func NewRouter(address common.Address, backend bind.ContractBackend) *Router {
	return &Router{
		contract: bind.NewBoundContract(address, RouterABI, backend, backend, backend),
	}
}

// GetFee is a free data retrieval call binding the contract method getFee.
func (r *Router) GetFee(opts *bind.CallOpts, destinationChainSelector uint64, message ClientEVM2AnyMessage) (*big.Int, error) {
	var out []any
	if err := r.contract.Call(opts, &out, "getFee", destinationChainSelector, message); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// IsChainSupported is a free data retrieval call binding the contract method isChainSupported.
func (r *Router) IsChainSupported(opts *bind.CallOpts, chainSelector uint64) (bool, error) {
	var out []any
	if err := r.contract.Call(opts, &out, "isChainSupported", chainSelector); err != nil {
		return false, err
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// CcipSend is a paid mutator transaction binding the contract method 0x96f4e9f9.
func (r *Router) CcipSend(
	opts *bind.TransactOpts, destinationChainSelector uint64, message ClientEVM2AnyMessage,
) (*gethtypes.Transaction, error) {
	return r.contract.Transact(opts, "ccipSend", destinationChainSelector, message)
}

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}

	return parsed
}
