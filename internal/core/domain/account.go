package domain

import (
	"github.com/shopspring/decimal"
)

// GoldBalance is the running metal position of a party account.
// Positive grams mean the house owes that much gold to the party; a negative
// figure means the party owes gold to the house. The same convention applies
// to the cash side. Every figure here is mutated exclusively through the
// balance-change path of a posted transaction; nothing else writes these.
type GoldBalance struct {
	TotalGrams decimal.Decimal `json:"totalGrams"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

// CashBalance is the running cash position of a party account in the house
// settlement currency (AED).
type CashBalance struct {
	Amount decimal.Decimal `json:"amount"`
}

// Balances groups the gold and cash positions of an account.
type Balances struct {
	GoldBalance GoldBalance `json:"goldBalance"`
	CashBalance CashBalance `json:"cashBalance"`
}

// Account represents a party (customer or supplier) within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountID string   `json:"accountID"` // Primary key (UUID)
	Code      string   `json:"code"`      // Unique human-facing party code
	Name      string   `json:"name"`
	Balances  Balances `json:"balances"`
	IsActive  bool     `json:"isActive"` // Soft delete flag
	AuditFields
}
