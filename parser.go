package bridge

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/smartcontractkit/ccip-bridge/sdk/evm"
)

// ParseSendCalldata decodes hex encoded router.ccipSend calldata. The 0x prefix is optional.
func ParseSendCalldata(calldata string) (*evm.DecodedCCIPSend, error) {
	raw := strings.TrimSpace(calldata)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")

	data, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid calldata hex: %w", err)
	}

	return evm.DecodeCCIPSend(data)
}

// MarshalSendData renders decoded ccipSend calldata as indented JSON.
func MarshalSendData(decoded *evm.DecodedCCIPSend) ([]byte, error) {
	return json.MarshalIndent(decoded, "", "  ")
}
