package testutils

import (
	"crypto/ecdsa"
	"encoding/hex"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Note: should only be used for testing purposes
type ECDSASigner struct {
	Key *ecdsa.PrivateKey
}

func NewECDSASigner() *ECDSASigner {
	key, _ := crypto.GenerateKey()
	return &ECDSASigner{Key: key}
}

func (s *ECDSASigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.Key.PublicKey)
}

// PrivateKeyHex returns the key the way it is usually stored in a .env file, without a 0x prefix.
func (s *ECDSASigner) PrivateKeyHex() string {
	return hex.EncodeToString(crypto.FromECDSA(s.Key))
}
