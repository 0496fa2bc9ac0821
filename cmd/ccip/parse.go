package ccip

import (
	"fmt"

	"github.com/spf13/cobra"

	bridge "github.com/smartcontractkit/ccip-bridge"
)

// defaultCalldata is a ccipSend bridging 0.1 USD1 from BSC to Ethereum mainnet.
const defaultCalldata = "0x96f4e9f900000000000000000000000000000000000000000000000045849994fc9c7b15000000000000000000000000000000000000000000000000000000000000004000000000000000000000000000000000000000000000000000000000000000a000000000000000000000000000000000000000000000000000000000000000e000000000000000000000000000000000000000000000000000000000000001000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000016000000000000000000000000000000000000000000000000000000000000000200000000000000000000000006007723dac9bb830f622bb4561e8017f021b9fb5000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000010000000000000000000000008d0d000ee44948fc98c9b98a4fa4921476f08b0d000000000000000000000000000000000000000000000000016345785d8a00000000000000000000000000000000000000000000000000000000000000000044181dcf100000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000100000000000000000000000000000000000000000000000000000000"

func buildParseSendDataCmd() *cobra.Command {
	var calldata string

	cmd := &cobra.Command{
		Use:   "parse-send-data",
		Short: "Decode router.ccipSend calldata and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			decoded, err := bridge.ParseSendCalldata(calldata)
			if err != nil {
				return err
			}

			out, err := bridge.MarshalSendData(decoded)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "CCIP Send Data:")
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}

	cmd.Flags().StringVar(&calldata, "calldata", defaultCalldata, "Hex encoded ccipSend calldata to parse")

	return cmd
}
