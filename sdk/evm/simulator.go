package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/ccip-bridge/sdk"
	"github.com/smartcontractkit/ccip-bridge/types"
)

var _ sdk.Simulator = (*Simulator)(nil)

// Simulator executes ccipSend with eth_call from a given sender.
type Simulator struct {
	*Encoder
	*Inspector
	from common.Address
}

func NewSimulator(encoder *Encoder, client ContractDeployBackend, from common.Address) *Simulator {
	return &Simulator{
		Encoder:   encoder,
		Inspector: NewInspector(client),
		from:      from,
	}
}

// SimulateCCIPSend returns the error the router would revert with if msg were sent now.
func (s *Simulator) SimulateCCIPSend(
	ctx context.Context,
	router common.Address,
	dest types.ChainSelector,
	msg types.Message,
	value *big.Int,
) error {
	if s.Encoder == nil {
		return errors.New("Simulator was created without an encoder")
	}

	if s.Inspector == nil {
		return errors.New("Simulator was created without an inspector")
	}

	data, err := s.EncodeCCIPSend(dest, msg)
	if err != nil {
		return err
	}

	if value == nil {
		value = big.NewInt(0)
	}

	_, err = s.client.CallContract(ctx, ethereum.CallMsg{
		From:  s.from,
		To:    &router,
		Value: value,
		Data:  data,
	}, nil)
	if err != nil {
		return fmt.Errorf("ccipSend simulation failed: %w", err)
	}

	return nil
}
