package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionFixing is the transaction_fixings table row.
type TransactionFixing struct {
	FixingID      string          `db:"fixing_id"`
	FixingType    string          `db:"fixing_type"`
	PartyCode     string          `db:"party_code"`
	PureWeight    decimal.Decimal `db:"pure_weight"`
	GoldBidValue  decimal.Decimal `db:"gold_bid_value"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	VoucherNumber string          `db:"voucher_number"`
	VoucherDate   time.Time       `db:"voucher_date"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}

// Entry is the entries table row: a standalone cash receipt or payment.
type Entry struct {
	EntryID       string          `db:"entry_id"`
	EntryType     string          `db:"entry_type"`
	PartyCode     string          `db:"party_code"`
	Amount        decimal.Decimal `db:"amount"`
	Remarks       string          `db:"remarks"`
	VoucherNumber string          `db:"voucher_number"`
	VoucherDate   time.Time       `db:"voucher_date"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}

// FundTransfer is the fund_transfers table row.
type FundTransfer struct {
	TransferID    string          `db:"transfer_id"`
	Asset         string          `db:"asset"`
	FromParty     string          `db:"from_party"`
	ToParty       string          `db:"to_party"`
	Amount        decimal.Decimal `db:"amount"`
	Remarks       string          `db:"remarks"`
	VoucherNumber string          `db:"voucher_number"`
	VoucherDate   time.Time       `db:"voucher_date"`
	AuditFields
}
