// Package config loads the network registry, the signing credentials and the options of a
// bridge transfer.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/ccip-bridge/sdk/evm"
	"github.com/smartcontractkit/ccip-bridge/types"
)

//go:embed networks.json
var networksJSON []byte

// Network is a CCIP enabled chain the bridge can send from or to.
type Network struct {
	Name           string              `json:"-"`
	ChainSelector  types.ChainSelector `json:"chainSelector" validate:"required"`
	Router         string              `json:"router" validate:"required,eth_addr"`
	RPCURLTemplate string              `json:"rpcUrlTemplate" validate:"required,contains=%s"`
	Tokens         map[string]string   `json:"tokens" validate:"omitempty,dive,keys,required,endkeys,eth_addr"`
}

// RouterAddress returns the address of the CCIP router on the network.
func (n Network) RouterAddress() common.Address {
	return common.HexToAddress(n.Router)
}

// RPCURL fills the RPC URL template with the given API key.
func (n Network) RPCURL(apiKey string) string {
	return fmt.Sprintf(n.RPCURLTemplate, apiKey)
}

// EVMChainID returns the EVM chain ID of the network.
func (n Network) EVMChainID() (uint64, error) {
	return evm.GetEVMChainID(n.ChainSelector)
}

// Token returns the address registered for symbol on the network.
func (n Network) Token(symbol string) (common.Address, bool) {
	addr, ok := n.Tokens[symbol]
	if !ok {
		return common.Address{}, false
	}

	return common.HexToAddress(addr), true
}

// Networks is the network registry keyed by network name.
type Networks map[string]Network

// DefaultNetworks returns the embedded registry of mainnet networks.
func DefaultNetworks() (Networks, error) {
	return ParseNetworks(networksJSON)
}

// ParseNetworks decodes and validates a network registry.
func ParseNetworks(data []byte) (Networks, error) {
	var networks Networks
	if err := json.Unmarshal(data, &networks); err != nil {
		return nil, fmt.Errorf("failed to decode networks: %w", err)
	}

	validate := validator.New()
	for name, network := range networks {
		network.Name = name
		if err := validate.Struct(network); err != nil {
			return nil, fmt.Errorf("invalid network %s: %w", name, err)
		}

		family, err := types.GetChainSelectorFamily(network.ChainSelector)
		if err != nil {
			return nil, fmt.Errorf("invalid network %s: %w", name, err)
		}

		if _, err := network.EVMChainID(); err != nil {
			return nil, fmt.Errorf("invalid network %s (%s): %w", name, family, err)
		}

		networks[name] = network
	}

	return networks, nil
}

// Get returns the network registered under name.
func (n Networks) Get(name string) (Network, error) {
	network, ok := n[name]
	if !ok {
		return Network{}, NewUnknownNetworkError(name, n.Names())
	}

	return network, nil
}

// Names returns the registered network names in sorted order.
func (n Networks) Names() []string {
	return slices.Sorted(maps.Keys(n))
}
