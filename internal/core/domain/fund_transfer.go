package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferAsset identifies which balance a fund transfer moves.
type TransferAsset string

const (
	TransferCash TransferAsset = "cash"
	TransferGold TransferAsset = "gold"
)

// IsValid reports whether the transfer asset is supported.
func (a TransferAsset) IsValid() bool {
	return a == TransferCash || a == TransferGold
}

// FundTransfer moves cash or gold between two party accounts. The two
// balance mutations and their registry rows form one atomic unit.
type FundTransfer struct {
	TransferID    string          `json:"transferID"` // Primary key (UUID)
	Asset         TransferAsset   `json:"asset"`
	FromParty     string          `json:"fromParty"`
	ToParty       string          `json:"toParty"`
	Amount        decimal.Decimal `json:"amount"` // Grams for gold, AED for cash
	Remarks       string          `json:"remarks"`
	VoucherNumber string          `json:"voucherNumber"`
	VoucherDate   time.Time       `json:"voucherDate"`
	AuditFields
}
