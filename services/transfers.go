// Package services contains the business logic behind the wallet endpoints.
package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"

	"github.com/solwatch/solana-wallet-backend/config"
	"github.com/solwatch/solana-wallet-backend/ledger"
	"github.com/solwatch/solana-wallet-backend/models"
)

const (
	// maxSignatures bounds the signature history walked per request; the
	// aggregation never pages beyond the most recent batch.
	maxSignatures = 1000

	windowSeconds = 7 * 24 * 3600
)

// TransferService aggregates incoming native transfers from the configured
// source wallet into per-day totals.
type TransferService struct {
	ledger Ledger
	source solana.PublicKey
	logger *logrus.Logger

	// now is stubbed in tests to pin the 7-day cutoff.
	now func() int64
}

// NewTransferService creates a new TransferService instance.
func NewTransferService(cfg *config.Config, l Ledger, logger *logrus.Logger) *TransferService {
	return &TransferService{
		ledger: l,
		source: cfg.SourceWallet,
		logger: logger,
		now:    func() int64 { return time.Now().Unix() },
	}
}

// DailyTotals returns the wallet's incoming SOL transfer totals from the
// source wallet, one entry per UTC day with activity in the trailing week,
// most recent day first.
func (s *TransferService) DailyTotals(ctx context.Context, address string) ([]models.DailyTotal, error) {
	wallet, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, fmt.Errorf("invalid wallet address %q: %w", address, err)
	}

	sigs, err := s.ledger.RecentSignatures(ctx, wallet, maxSignatures)
	if err != nil {
		return nil, err
	}

	return s.aggregateDaily(ctx, wallet, sigs, s.ledger.TransactionDetail, s.now())
}

type fetchFunc func(ctx context.Context, sig solana.Signature) (*ledger.TransactionDetail, error)

// aggregateDaily walks the signature list newest-first and sums the wallet's
// positive lamport deltas from transactions that also involve the source
// wallet. Fetches run strictly sequentially; the first fetch error aborts the
// whole aggregation and no partial result is returned.
func (s *TransferService) aggregateDaily(ctx context.Context, wallet solana.PublicKey, sigs []ledger.SignatureRecord, fetch fetchFunc, nowSeconds int64) ([]models.DailyTotal, error) {
	cutoff := nowSeconds - windowSeconds
	lamportsByDay := make(map[string]int64)

	for _, rec := range sigs {
		// Records without a block time are not pre-filtered; the cutoff
		// only applies when the node reported a timestamp.
		if rec.BlockTime != nil && *rec.BlockTime < cutoff {
			continue
		}

		tx, err := fetch(ctx, rec.Signature)
		if err != nil {
			return nil, err
		}
		if tx == nil || len(tx.PreBalances) == 0 {
			s.logger.WithField("signature", rec.Signature.String()).
				Debug("transaction unavailable, skipping")
			continue
		}

		walletIdx := accountIndex(tx.AccountKeys, wallet)
		sourceIdx := accountIndex(tx.AccountKeys, s.source)
		if walletIdx < 0 || sourceIdx < 0 ||
			walletIdx >= len(tx.PreBalances) || walletIdx >= len(tx.PostBalances) {
			continue
		}

		delta := int64(tx.PostBalances[walletIdx]) - int64(tx.PreBalances[walletIdx])
		if delta <= 0 {
			continue
		}

		day, ok := transferDay(rec.BlockTime, tx.BlockTime)
		if !ok {
			s.logger.WithField("signature", rec.Signature.String()).
				Debug("transfer has no block time, skipping")
			continue
		}
		lamportsByDay[day] += delta
	}

	totals := make([]models.DailyTotal, 0, len(lamportsByDay))
	for day, lamports := range lamportsByDay {
		totals = append(totals, models.DailyTotal{
			Date:  day,
			Total: float64(lamports) / float64(solana.LAMPORTS_PER_SOL),
			From:  s.source.String(),
		})
	}
	// YYYY-MM-DD compares lexicographically in chronological order.
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date > totals[j].Date
	})
	return totals, nil
}

// transferDay resolves the UTC calendar day of a transfer, preferring the
// signature record's block time and falling back to the transaction's own.
func transferDay(recTime, txTime *int64) (string, bool) {
	t := recTime
	if t == nil {
		t = txTime
	}
	if t == nil {
		return "", false
	}
	return time.Unix(*t, 0).UTC().Format("2006-01-02"), true
}

func accountIndex(keys []solana.PublicKey, target solana.PublicKey) int {
	for i, key := range keys {
		if key.Equals(target) {
			return i
		}
	}
	return -1
}
