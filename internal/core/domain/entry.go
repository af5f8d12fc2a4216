package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind distinguishes cash receipts from cash payments.
type EntryKind string

const (
	// EntryReceipt is cash received from the party: the house owes less, so
	// the party's cash balance decreases.
	EntryReceipt EntryKind = "receipt"
	// EntryPayment is cash paid out to the party.
	EntryPayment EntryKind = "payment"
)

// IsValid reports whether the entry kind is supported.
func (k EntryKind) IsValid() bool {
	return k == EntryReceipt || k == EntryPayment
}

// Entry is a standalone cash receipt or payment against a party account.
type Entry struct {
	EntryID       string          `json:"entryID"` // Primary key (UUID)
	EntryType     EntryKind       `json:"entryType"`
	PartyCode     string          `json:"partyCode"`
	Amount        decimal.Decimal `json:"amount"`
	Remarks       string          `json:"remarks"`
	VoucherNumber string          `json:"voucherNumber"`
	VoucherDate   time.Time       `json:"voucherDate"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}
