package config

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	source := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()
	t.Setenv("SOLTRACK_SOURCE_WALLET", source.String())
	t.Setenv("SOLTRACK_TOKEN_MINT", mint.String())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, rpc.MainNetBeta_RPC, cfg.RPCEndpoint)
	assert.Equal(t, source, cfg.SourceWallet)
	assert.Equal(t, mint, cfg.TokenMint)
	assert.Equal(t, solana.TokenProgramID, cfg.TokenProgram)
	assert.False(t, cfg.WalletMode)
	assert.False(t, cfg.EnableLogging)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "logs/access_log.csv", cfg.AccessLogPath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SOLTRACK_SOURCE_WALLET", solana.NewWallet().PublicKey().String())
	t.Setenv("SOLTRACK_TOKEN_MINT", solana.NewWallet().PublicKey().String())
	t.Setenv("SOLTRACK_RPC_ENDPOINT", "http://localhost:8899")
	t.Setenv("SOLTRACK_WALLET_MODE", "1")
	t.Setenv("SOLTRACK_ENABLE_LOGGING", "1")
	t.Setenv("SOLTRACK_LISTEN_ADDR", ":9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8899", cfg.RPCEndpoint)
	assert.True(t, cfg.WalletMode)
	assert.True(t, cfg.EnableLogging)
	assert.Equal(t, ":9090", cfg.ListenAddr)
}

func TestLoadMissingSourceWallet(t *testing.T) {
	t.Setenv("SOLTRACK_TOKEN_MINT", solana.NewWallet().PublicKey().String())

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOLTRACK_SOURCE_WALLET")
}

func TestLoadInvalidMint(t *testing.T) {
	t.Setenv("SOLTRACK_SOURCE_WALLET", solana.NewWallet().PublicKey().String())
	t.Setenv("SOLTRACK_TOKEN_MINT", "l0IO-not-base58")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token_mint")
}
