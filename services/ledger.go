package services

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/solwatch/solana-wallet-backend/ledger"
)

// Ledger is the slice of the RPC node the services consume.
type Ledger interface {
	RecentSignatures(ctx context.Context, addr solana.PublicKey, limit int) ([]ledger.SignatureRecord, error)
	TransactionDetail(ctx context.Context, sig solana.Signature) (*ledger.TransactionDetail, error)
	TokenAccountsByOwner(ctx context.Context, owner, program solana.PublicKey) ([]ledger.TokenAccount, error)
}
