package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Client is the RPC-backed ledger client. Safe for concurrent use.
type Client struct {
	rpc *rpc.Client
}

// NewClient creates a ledger client for the given RPC endpoint.
func NewClient(endpoint string) *Client {
	return &Client{rpc: rpc.New(endpoint)}
}

// RecentSignatures returns up to limit of the most recent transaction
// signatures involving addr, newest first.
func (c *Client) RecentSignatures(ctx context.Context, addr solana.PublicKey, limit int) ([]SignatureRecord, error) {
	out, err := c.rpc.GetSignaturesForAddressWithOpts(ctx, addr, &rpc.GetSignaturesForAddressOpts{
		Limit: &limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list signatures for %s: %w", addr, err)
	}

	records := make([]SignatureRecord, 0, len(out))
	for _, sig := range out {
		rec := SignatureRecord{Signature: sig.Signature}
		if sig.BlockTime != nil {
			t := int64(*sig.BlockTime)
			rec.BlockTime = &t
		}
		records = append(records, rec)
	}
	return records, nil
}

// TransactionDetail fetches a confirmed transaction by signature. It returns
// (nil, nil) when the node has pruned or not yet indexed the transaction, or
// when the result carries no balance metadata.
func (c *Client) TransactionDetail(ctx context.Context, sig solana.Signature) (*TransactionDetail, error) {
	maxVersion := uint64(0)
	out, err := c.rpc.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
		Encoding:                       solana.EncodingBase64,
		MaxSupportedTransactionVersion: &maxVersion,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction %s: %w", sig, err)
	}
	if out == nil || out.Meta == nil || out.Transaction == nil {
		return nil, nil
	}

	tx, err := out.Transaction.GetTransaction()
	if err != nil {
		return nil, fmt.Errorf("decode transaction %s: %w", sig, err)
	}

	detail := &TransactionDetail{
		AccountKeys:  tx.Message.AccountKeys,
		PreBalances:  out.Meta.PreBalances,
		PostBalances: out.Meta.PostBalances,
	}
	if out.BlockTime != nil {
		t := int64(*out.BlockTime)
		detail.BlockTime = &t
	}
	return detail, nil
}

// parsedTokenAccount mirrors the jsonParsed encoding of an SPL token account.
type parsedTokenAccount struct {
	Parsed struct {
		Info struct {
			Mint        string `json:"mint"`
			TokenAmount struct {
				Amount   string `json:"amount"`
				Decimals uint8  `json:"decimals"`
			} `json:"tokenAmount"`
		} `json:"info"`
	} `json:"parsed"`
}

// TokenAccountsByOwner lists all token accounts held by owner under the
// given token program.
func (c *Client) TokenAccountsByOwner(ctx context.Context, owner, program solana.PublicKey) ([]TokenAccount, error) {
	out, err := c.rpc.GetTokenAccountsByOwner(ctx, owner,
		&rpc.GetTokenAccountsConfig{ProgramId: &program},
		&rpc.GetTokenAccountsOpts{Encoding: solana.EncodingJSONParsed},
	)
	if err != nil {
		return nil, fmt.Errorf("list token accounts for %s: %w", owner, err)
	}

	accounts := make([]TokenAccount, 0, len(out.Value))
	for _, item := range out.Value {
		var parsed parsedTokenAccount
		if err := json.Unmarshal(item.Account.Data.GetRawJSON(), &parsed); err != nil {
			return nil, fmt.Errorf("parse token account %s: %w", item.Pubkey, err)
		}
		amount, err := strconv.ParseUint(parsed.Parsed.Info.TokenAmount.Amount, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse token amount for %s: %w", item.Pubkey, err)
		}
		mint, err := solana.PublicKeyFromBase58(parsed.Parsed.Info.Mint)
		if err != nil {
			return nil, fmt.Errorf("parse mint for %s: %w", item.Pubkey, err)
		}
		accounts = append(accounts, TokenAccount{
			Address:  item.Pubkey,
			Mint:     mint,
			Amount:   amount,
			Decimals: parsed.Parsed.Info.TokenAmount.Decimals,
		})
	}
	return accounts, nil
}
