package ccip

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	bridge "github.com/smartcontractkit/ccip-bridge"
	"github.com/smartcontractkit/ccip-bridge/internal/config"
	"github.com/smartcontractkit/ccip-bridge/internal/utils/safecast"
	"github.com/smartcontractkit/ccip-bridge/sdk"
	"github.com/smartcontractkit/ccip-bridge/sdk/evm"
)

const (
	defaultAmount      = "10000000000000000" // 0.01 USD1
	defaultDstGasLimit = "0"                 // the destination chain applies its default
	defaultSource      = "bscMainnet"
	defaultDest        = "ethereumMainnet"
)

func buildBridgeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bridge",
		Short: "Bridge tokens to another chain through the CCIP router",
		Long: `Quotes the CCIP fee, approves the router for the transferred amount when the current
allowance is lower, then calls ccipSend paying the fee in the native token.

ALCHEMY_KEY and PRIVATE_KEY are read from the environment or from the env file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := readSendFlags(v)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if timeout := v.GetDuration(flagTimeout); timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			txHash, err := runBridge(ctx, v, flags)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), txHash)

			return nil
		},
	}

	cmd.Flags().String("amount", defaultAmount, "Amount of tokens to bridge, in the token's smallest unit")
	cmd.Flags().String("dstGasLimit", defaultDstGasLimit, "Callback gas limit on the destination chain, 0 uses the chain default")
	cmd.Flags().String("token", "", "Token to bridge (default USD1 on the source network)")
	cmd.Flags().String("receiver", "", "Receiver on the destination chain (default the sender)")
	cmd.Flags().String("source", defaultSource, "Network to send from")
	cmd.Flags().String("dest", defaultDest, "Network to send to")
	cmd.Flags().String("rpc-url", "", "RPC endpoint of the source network (default the Alchemy endpoint for ALCHEMY_KEY)")
	cmd.Flags().Bool("preflight", false, "Check lane support and token balance before sending")
	cmd.Flags().Bool("wait", false, "Wait for the ccipSend transaction to be mined")

	return cmd
}

// readSendFlags collects the bridge flags from v, taking CCIP_ prefixed environment variables
// and the config file into account.
func readSendFlags(v *viper.Viper) (config.SendFlags, error) {
	var flags config.SendFlags
	if err := v.Unmarshal(&flags); err != nil {
		return config.SendFlags{}, fmt.Errorf("failed to read flags: %w", err)
	}

	return flags, nil
}

// runBridge validates the options, connects to the source network and sends the transfer,
// returning the ccipSend transaction hash.
func runBridge(ctx context.Context, v *viper.Viper, flags config.SendFlags) (string, error) {
	lggr := sdk.LoggerFrom(ctx)

	networks, err := config.DefaultNetworks()
	if err != nil {
		return "", err
	}

	opts, err := config.ParseSendOptions(flags, networks)
	if err != nil {
		return "", err
	}

	creds, err := config.LoadCredentials(v, opts.RPCURL == "")
	if err != nil {
		return "", err
	}

	lggr.Infof("Using account %s", creds.Address().Hex())

	rpcURL := opts.RPCURL
	if rpcURL == "" {
		rpcURL = opts.Source.RPCURL(creds.AlchemyKey)
	}

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return "", fmt.Errorf("failed to connect to %s: %w", opts.Source.Name, err)
	}
	defer client.Close()

	auth, err := newTransactOpts(ctx, client, opts.Source, creds)
	if err != nil {
		return "", err
	}

	receiver := opts.Receiver
	if receiver == (common.Address{}) {
		receiver = creds.Address()
	}

	msg, err := evm.NewTokenTransferMessage(receiver, opts.Token, opts.Amount, opts.DstGasLimit, true)
	if err != nil {
		return "", err
	}

	lggr.Infof("Bridging %s of token %s from %s to %s, receiver %s",
		opts.Amount, opts.Token.Hex(), opts.Source.Name, opts.Dest.Name, receiver.Hex())

	encoder := evm.NewEncoder()
	executor := evm.NewExecutor(encoder, client, auth)
	simulator := evm.NewSimulator(encoder, client, auth.From)

	b := bridge.NewBridge(executor, opts.Source.RouterAddress()).WithSimulator(simulator)
	result, err := b.Send(ctx, bridge.SendRequest{
		Dest:      opts.Dest.ChainSelector,
		Message:   msg,
		Preflight: opts.Preflight,
		Wait:      opts.Wait,
	})
	if err != nil {
		return "", err
	}

	return result.Send.Hash, nil
}

// newTransactOpts builds a signer for the source network, refusing an RPC endpoint that
// serves a different chain.
func newTransactOpts(
	ctx context.Context, client *ethclient.Client, source config.Network, creds config.Credentials,
) (*bind.TransactOpts, error) {
	chainID, err := source.EVMChainID()
	if err != nil {
		return nil, err
	}

	rpcChainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID from %s: %w", source.Name, err)
	}

	if !rpcChainID.IsUint64() || rpcChainID.Uint64() != chainID {
		return nil, fmt.Errorf("RPC endpoint serves chain %s, expected %s chain %d", rpcChainID, source.Name, chainID)
	}

	id, err := safecast.Uint64ToInt64(chainID)
	if err != nil {
		return nil, err
	}

	return bind.NewKeyedTransactorWithChainID(creds.PrivateKey, big.NewInt(id))
}
