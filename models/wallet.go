package models

// TokenHolding is one matching token account in the wallet-info response.
type TokenHolding struct {
	Mint                string  `json:"mint"`
	Amount              float64 `json:"amount"`
	Decimals            uint8   `json:"decimals"`
	TokenAccountAddress string  `json:"tokenAccountAddress"`
}

// WalletInfoResponse represents the API response for the wallet-info endpoint
type WalletInfoResponse struct {
	WalletAddress     string         `json:"walletAddress"`
	DerivedATA        string         `json:"derivedATA"`
	SignificantTokens []TokenHolding `json:"significantTokens"`
}

// DailyTotal is the summed incoming transfer volume for one UTC calendar day.
type DailyTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
	From  string  `json:"from"`
}

// DailyTotalsResponse represents the API response for the daily-transfer-totals endpoint
type DailyTotalsResponse struct {
	DailyTotals []DailyTotal `json:"dailyTotals"`
}
