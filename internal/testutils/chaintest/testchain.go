package chaintest

import (
	cselectors "github.com/smartcontractkit/chain-selectors"

	"github.com/smartcontractkit/ccip-bridge/types"
)

var (
	Chain1RawSelector = cselectors.BINANCE_SMART_CHAIN_MAINNET.Selector   // 11344663589394136015
	Chain1Selector    = types.ChainSelector(Chain1RawSelector)            // 11344663589394136015
	Chain1EVMID       = cselectors.BINANCE_SMART_CHAIN_MAINNET.EvmChainID // 56

	Chain2RawSelector = cselectors.ETHEREUM_MAINNET.Selector   // 5009297550715157269
	Chain2Selector    = types.ChainSelector(Chain2RawSelector) // 5009297550715157269
	Chain2EVMID       = cselectors.ETHEREUM_MAINNET.EvmChainID // 1

	SimChainRawSelector = cselectors.GETH_TESTNET.Selector         // 3379446385462418246
	SimChainSelector    = types.ChainSelector(SimChainRawSelector) // 3379446385462418246
	SimChainEVMID       = cselectors.GETH_TESTNET.EvmChainID       // 1337

	// TestInvalidChainSelector is a chain selector that doesn't exist.
	TestInvalidChainSelector = types.ChainSelector(0)
)
