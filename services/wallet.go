package services

import (
	"context"
	"fmt"
	"math"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"

	"github.com/solwatch/solana-wallet-backend/config"
	"github.com/solwatch/solana-wallet-backend/models"
)

// WalletService resolves a wallet's holdings of the configured token mint.
type WalletService struct {
	ledger       Ledger
	mint         solana.PublicKey
	tokenProgram solana.PublicKey
	logger       *logrus.Logger
}

// NewWalletService creates a new WalletService instance.
func NewWalletService(cfg *config.Config, l Ledger, logger *logrus.Logger) *WalletService {
	return &WalletService{
		ledger:       l,
		mint:         cfg.TokenMint,
		tokenProgram: cfg.TokenProgram,
		logger:       logger,
	}
}

// WalletInfo derives the wallet's associated token account for the configured
// mint and returns its holdings of that mint, if any.
func (s *WalletService) WalletInfo(ctx context.Context, address string) (*models.WalletInfoResponse, error) {
	wallet, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, fmt.Errorf("invalid wallet address %q: %w", address, err)
	}

	ata, err := DeriveAssociatedTokenAddress(wallet, s.mint, s.tokenProgram)
	if err != nil {
		return nil, fmt.Errorf("derive associated token address: %w", err)
	}

	accounts, err := s.ledger.TokenAccountsByOwner(ctx, wallet, s.tokenProgram)
	if err != nil {
		return nil, err
	}

	holdings := make([]models.TokenHolding, 0, 1)
	for _, acct := range accounts {
		if !acct.Mint.Equals(s.mint) {
			continue
		}
		holdings = append(holdings, models.TokenHolding{
			Mint:                acct.Mint.String(),
			Amount:              float64(acct.Amount) / math.Pow10(int(acct.Decimals)),
			Decimals:            acct.Decimals,
			TokenAccountAddress: acct.Address.String(),
		})
		// The owner holds at most one account per mint; keep the first.
		break
	}

	return &models.WalletInfoResponse{
		WalletAddress:     wallet.String(),
		DerivedATA:        ata.String(),
		SignificantTokens: holdings,
	}, nil
}

// DeriveAssociatedTokenAddress computes the canonical associated token
// account for (owner, mint) under the given token program.
func DeriveAssociatedTokenAddress(owner, mint, tokenProgram solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{owner.Bytes(), tokenProgram.Bytes(), mint.Bytes()},
		solana.SPLAssociatedTokenAccountProgramID,
	)
	return addr, err
}
