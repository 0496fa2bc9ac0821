package config

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvAlchemyKey = "ALCHEMY_KEY"
	EnvPrivateKey = "PRIVATE_KEY"
)

// Credentials hold the secrets needed to reach the source chain and sign transactions.
type Credentials struct {
	AlchemyKey string
	PrivateKey *ecdsa.PrivateKey
}

// Address returns the account controlled by the private key.
func (c Credentials) Address() common.Address {
	return crypto.PubkeyToAddress(c.PrivateKey.PublicKey)
}

// credentialKeys are the only variables read from the environment by their bare names.
var credentialKeys = []string{EnvAlchemyKey, EnvPrivateKey}

// BindCredentialEnv binds the credential keys of v to the unprefixed environment variables.
func BindCredentialEnv(v *viper.Viper) error {
	for _, key := range credentialKeys {
		if err := v.BindEnv(key, key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	return nil
}

// LoadEnvFile registers the credentials found in a dotenv file as defaults of v, so values
// from the process environment or a config file take precedence. Other variables in the
// file are ignored. A missing file is not an error.
func LoadEnvFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	for _, key := range credentialKeys {
		if value, ok := values[key]; ok {
			v.SetDefault(key, value)
		}
	}

	return nil
}

// LoadCredentials reads the credentials from v. The Alchemy key is only required when the
// RPC URL has to be derived from the network registry.
func LoadCredentials(v *viper.Viper, requireAlchemyKey bool) (Credentials, error) {
	alchemyKey := v.GetString(EnvAlchemyKey)
	if requireAlchemyKey && alchemyKey == "" {
		return Credentials{}, NewMissingEnvVarError(EnvAlchemyKey)
	}

	rawKey := v.GetString(EnvPrivateKey)
	if rawKey == "" {
		return Credentials{}, NewMissingEnvVarError(EnvPrivateKey)
	}

	key, err := ParsePrivateKey(rawKey)
	if err != nil {
		return Credentials{}, fmt.Errorf("invalid %s: %w", EnvPrivateKey, err)
	}

	return Credentials{AlchemyKey: alchemyKey, PrivateKey: key}, nil
}

// ParsePrivateKey decodes a hex encoded secp256k1 key, with or without a 0x prefix.
func ParsePrivateKey(raw string) (*ecdsa.PrivateKey, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")

	return crypto.HexToECDSA(raw)
}
