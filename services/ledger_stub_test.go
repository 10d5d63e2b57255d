package services

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/solwatch/solana-wallet-backend/ledger"
)

// stubLedger is a canned in-memory Ledger for service tests.
type stubLedger struct {
	sigs    []ledger.SignatureRecord
	sigsErr error

	txs   map[solana.Signature]*ledger.TransactionDetail
	txErr error

	accounts    []ledger.TokenAccount
	accountsErr error
}

func (s *stubLedger) RecentSignatures(context.Context, solana.PublicKey, int) ([]ledger.SignatureRecord, error) {
	return s.sigs, s.sigsErr
}

func (s *stubLedger) TransactionDetail(_ context.Context, sig solana.Signature) (*ledger.TransactionDetail, error) {
	if s.txErr != nil {
		return nil, s.txErr
	}
	return s.txs[sig], nil
}

func (s *stubLedger) TokenAccountsByOwner(context.Context, solana.PublicKey, solana.PublicKey) ([]ledger.TokenAccount, error) {
	return s.accounts, s.accountsErr
}
