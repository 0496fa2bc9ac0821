package types

// TransactionResult is returned by every state changing call.
// Users of this struct should cast RawTransaction to the chain specific type.
type TransactionResult struct {
	Hash           string `json:"hash"`
	RawTransaction any    `json:"tx"`
}

// TransactionReceipt is the chain agnostic outcome of a mined transaction.
type TransactionReceipt struct {
	Hash        string `json:"hash"`
	BlockNumber uint64 `json:"blockNumber"`
	GasUsed     uint64 `json:"gasUsed"`
	Success     bool   `json:"success"`
}

// TokenMetadata describes an ERC20 style token.
type TokenMetadata struct {
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}
