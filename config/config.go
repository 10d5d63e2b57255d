// Package config loads the application configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/viper"
)

// Config holds application configuration, read once at startup and passed
// into the service constructors.
type Config struct {
	RPCEndpoint   string
	SourceWallet  solana.PublicKey
	TokenMint     solana.PublicKey
	TokenProgram  solana.PublicKey
	WalletMode    bool
	EnableLogging bool
	ListenAddr    string
	AccessLogPath string
}

// Load reads configuration from SOLTRACK_* environment variables.
// SOLTRACK_SOURCE_WALLET and SOLTRACK_TOKEN_MINT are required; everything
// else has a default.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SOLTRACK")
	v.AutomaticEnv()

	v.SetDefault("rpc_endpoint", rpc.MainNetBeta_RPC)
	v.SetDefault("token_program", solana.TokenProgramID.String())
	v.SetDefault("wallet_mode", false)
	v.SetDefault("enable_logging", false)
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("access_log_path", "logs/access_log.csv")

	cfg := &Config{
		RPCEndpoint:   v.GetString("rpc_endpoint"),
		WalletMode:    v.GetBool("wallet_mode"),
		EnableLogging: v.GetBool("enable_logging"),
		ListenAddr:    v.GetString("listen_addr"),
		AccessLogPath: v.GetString("access_log_path"),
	}

	var err error
	if cfg.SourceWallet, err = requireAddress(v, "source_wallet"); err != nil {
		return nil, err
	}
	if cfg.TokenMint, err = requireAddress(v, "token_mint"); err != nil {
		return nil, err
	}
	if cfg.TokenProgram, err = requireAddress(v, "token_program"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func requireAddress(v *viper.Viper, key string) (solana.PublicKey, error) {
	raw := v.GetString(key)
	if raw == "" {
		return solana.PublicKey{}, fmt.Errorf("SOLTRACK_%s is required", strings.ToUpper(key))
	}
	pk, err := solana.PublicKeyFromBase58(raw)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return pk, nil
}
