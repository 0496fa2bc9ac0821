// Package ccip implements the ccip command line tool.
package ccip

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/ccip-bridge/internal/config"
	"github.com/smartcontractkit/ccip-bridge/sdk"
)

const (
	flagConfig   = "config"
	flagEnvFile  = "env-file"
	flagLogLevel = "log-level"
	flagTimeout  = "timeout"

	// envPrefix namespaces the environment variables that set flags, e.g. CCIP_AMOUNT.
	envPrefix = "CCIP"
)

// BuildCCIPCmd returns the root command with every subcommand attached.
func BuildCCIPCmd() *cobra.Command {
	return buildCCIPCmd(viper.New())
}

func buildCCIPCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ccip",
		Short:         "Bridge tokens with Chainlink CCIP and inspect ccipSend calldata",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
	}

	cmd.PersistentFlags().String(flagConfig, "", "Optional config file holding credentials and flag values")
	cmd.PersistentFlags().String(flagEnvFile, ".env", "dotenv file with ALCHEMY_KEY and PRIVATE_KEY, ignored when missing")
	cmd.PersistentFlags().String(flagLogLevel, "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().Duration(flagTimeout, 0, "Abort the command after this long, 0 disables the timeout")

	cmd.AddCommand(buildBridgeCmd(v))
	cmd.AddCommand(buildParseSendDataCmd())

	return cmd
}

// initConfig reads in the config file, the env file and ENV variables, and attaches a logger
// to the command context.
func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := config.BindCredentialEnv(v); err != nil {
		return err
	}

	if cfgFile := v.GetString(flagConfig); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	}

	if err := config.LoadEnvFile(v, v.GetString(flagEnvFile)); err != nil {
		return err
	}

	logger, err := newLogger(v.GetString(flagLogLevel))
	if err != nil {
		return err
	}

	cmd.SetContext(sdk.WithLogger(cmd.Context(), logger.Sugar()))

	return nil
}

// newLogger builds a human readable logger writing to stderr, leaving stdout to command output.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.DateTime)
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	return cfg.Build()
}
