// Package ledger wraps the Solana RPC node behind a small typed surface.
package ledger

import (
	"github.com/gagliardetto/solana-go"
)

// SignatureRecord is one entry of a wallet's signature history, newest first.
// BlockTime is nil when the node did not report a timestamp for the slot.
type SignatureRecord struct {
	Signature solana.Signature
	BlockTime *int64
}

// TransactionDetail carries the parts of a confirmed transaction the
// aggregation needs: the static account list and the per-account lamport
// balances around execution.
type TransactionDetail struct {
	BlockTime    *int64
	AccountKeys  []solana.PublicKey
	PreBalances  []uint64
	PostBalances []uint64
}

// TokenAccount is a parsed SPL token account owned by the queried wallet.
type TokenAccount struct {
	Address  solana.PublicKey
	Mint     solana.PublicKey
	Amount   uint64
	Decimals uint8
}
