package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFixingRequest locks an unfixed gold position to cash.
type CreateFixingRequest struct {
	FixingType    string          `json:"fixingType" binding:"required"`
	PartyCode     string          `json:"partyCode" binding:"required"`
	PureWeight    decimal.Decimal `json:"pureWeight"`
	GoldBidValue  decimal.Decimal `json:"goldBidValue"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	VoucherNumber string          `json:"voucherNumber" binding:"required"`
	VoucherDate   time.Time       `json:"voucherDate" binding:"required"`
}

// CreateEntryRequest records a cash receipt or payment against a party.
type CreateEntryRequest struct {
	EntryType     string          `json:"entryType" binding:"required"`
	PartyCode     string          `json:"partyCode" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Remarks       string          `json:"remarks"`
	VoucherNumber string          `json:"voucherNumber" binding:"required"`
	VoucherDate   time.Time       `json:"voucherDate" binding:"required"`
}

// CreateFundTransferRequest moves cash or gold between two parties.
type CreateFundTransferRequest struct {
	Asset         string          `json:"asset" binding:"required"`
	FromParty     string          `json:"fromParty" binding:"required"`
	ToParty       string          `json:"toParty" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Remarks       string          `json:"remarks"`
	VoucherNumber string          `json:"voucherNumber" binding:"required"`
	VoucherDate   time.Time       `json:"voucherDate" binding:"required"`
}
