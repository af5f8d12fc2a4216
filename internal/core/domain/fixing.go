package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixingKind identifies which side of the book a fixing settles.
type FixingKind string

const (
	// FixingPurchase locks a floating purchase position: the party's unfixed
	// gold claim is settled into cash owed by the party.
	FixingPurchase FixingKind = "purchase"
	// FixingSale locks a floating sale position the other way around.
	FixingSale FixingKind = "sale"
)

// IsValid reports whether the fixing kind is supported.
func (k FixingKind) IsValid() bool {
	return k == FixingPurchase || k == FixingSale
}

// TransactionFixing records the act of locking an unfixed metal position to a
// definite cash value at an agreed bid rate.
type TransactionFixing struct {
	FixingID      string          `json:"fixingID"` // Primary key (UUID)
	FixingType    FixingKind      `json:"fixingType"`
	PartyCode     string          `json:"partyCode"`
	PureWeight    decimal.Decimal `json:"pureWeight"`
	GoldBidValue  decimal.Decimal `json:"goldBidValue"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	VoucherNumber string          `json:"voucherNumber"`
	VoucherDate   time.Time       `json:"voucherDate"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}
