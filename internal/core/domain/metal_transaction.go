package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind identifies the commercial direction of a metal transaction.
type TransactionKind string

const (
	Purchase       TransactionKind = "purchase"
	Sale           TransactionKind = "sale"
	PurchaseReturn TransactionKind = "purchaseReturn"
	SaleReturn     TransactionKind = "saleReturn"
)

// IsValid reports whether the kind is one of the four supported values.
func (k TransactionKind) IsValid() bool {
	switch k {
	case Purchase, Sale, PurchaseReturn, SaleReturn:
		return true
	}
	return false
}

// IsSaleLike reports whether physical stock leaves the house for this kind.
// Sales and purchase returns move metal out; purchases and sale returns move it in.
func (k TransactionKind) IsSaleLike() bool {
	return k == Sale || k == PurchaseReturn
}

// TransactionMode distinguishes fixed-price from floating-price transactions.
type TransactionMode string

const (
	ModeFix   TransactionMode = "fix"
	ModeUnfix TransactionMode = "unfix"
)

// ResolveMode derives the effective mode from the two stored flags.
// Fix requires fixed set and unfix clear; every other combination, including
// both flags false, resolves to unfix.
func ResolveMode(fixed, unfix bool) TransactionMode {
	if fixed && !unfix {
		return ModeFix
	}
	return ModeUnfix
}

// TransactionStatus tracks the lifecycle of a metal transaction.
type TransactionStatus string

const (
	StatusDraft     TransactionStatus = "draft"
	StatusConfirmed TransactionStatus = "confirmed"
	StatusCompleted TransactionStatus = "completed"
	StatusCancelled TransactionStatus = "cancelled"
)

// CanTransitionTo reports whether the status machine allows moving to next.
// Completed and cancelled are terminal; cancelled is reachable from any
// non-terminal state.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	if s == StatusCompleted || s == StatusCancelled {
		return false
	}
	switch next {
	case StatusConfirmed:
		return s == StatusDraft
	case StatusCompleted:
		return s == StatusConfirmed
	case StatusCancelled:
		return true
	}
	return false
}

// ChargeDetail is an amount plus the rate it was derived from.
type ChargeDetail struct {
	Amount decimal.Decimal `json:"amount"`
	Rate   decimal.Decimal `json:"rate"`
}

// OtherChargeDetail is a free-form auxiliary charge on a stock item.
type OtherChargeDetail struct {
	Amount      decimal.Decimal `json:"amount"`
	Rate        decimal.Decimal `json:"rate"`
	Description string          `json:"description"`
}

// VATDetail holds the VAT applied to a stock item.
type VATDetail struct {
	Percentage decimal.Decimal `json:"percentage"`
	Amount     decimal.Decimal `json:"amount"`
}

// StockItemTotals are the per-line computed amounts.
type StockItemTotals struct {
	BaseAmount         decimal.Decimal `json:"baseAmount"`
	MakingChargesTotal decimal.Decimal `json:"makingChargesTotal"`
	PremiumTotal       decimal.Decimal `json:"premiumTotal"`
	SubTotal           decimal.Decimal `json:"subTotal"`
	VATAmount          decimal.Decimal `json:"vatAmount"`
	ItemTotalAmount    decimal.Decimal `json:"itemTotalAmount"`
}

// StockItem is one line of a metal transaction. Purity is stored as a
// fraction in (0,1]; PureWeight is GrossWeight scaled by Purity.
// Premium.Amount is signed: positive is a premium, negative a discount.
type StockItem struct {
	StockCode     string            `json:"stockCode"`
	Description   string            `json:"description"`
	Pieces        int64             `json:"pieces"`
	GrossWeight   decimal.Decimal   `json:"grossWeight"`
	Purity        decimal.Decimal   `json:"purity"`
	PureWeight    decimal.Decimal   `json:"pureWeight"`
	WeightOz      decimal.Decimal   `json:"weightOz"`
	MetalRate     decimal.Decimal   `json:"metalRate"`
	MakingCharges ChargeDetail      `json:"makingCharges"`
	Premium       ChargeDetail      `json:"premium"`
	OtherCharges  OtherChargeDetail `json:"otherCharges"`
	VAT           VATDetail         `json:"vat"`
	Totals        StockItemTotals   `json:"totals"`
}

// SessionTotals are the transaction-level aggregate amounts captured at entry
// time. TotalAmountAED is authoritative for fix-mode cash settlement and is
// not recomputed from the per-item sums.
type SessionTotals struct {
	TotalAmountAED decimal.Decimal `json:"totalAmountAED"`
	VATAmount      decimal.Decimal `json:"vatAmount"`
	NetAmount      decimal.Decimal `json:"netAmount"`
}

// MetalTransaction is one commercial event: a purchase, sale, or return of
// metal, fixed or unfixed. It must carry at least one stock item at all times.
type MetalTransaction struct {
	TransactionID   string            `json:"transactionID"` // Primary key (UUID)
	TransactionType TransactionKind   `json:"transactionType"`
	Fixed           bool              `json:"fixed"`
	Unfix           bool              `json:"unfix"`
	PartyCode       string            `json:"partyCode"`
	StockItems      []StockItem       `json:"stockItems"`
	Totals          SessionTotals     `json:"totalAmountSession"`
	VoucherNumber   string            `json:"voucherNumber"`
	VoucherDate     time.Time         `json:"voucherDate"`
	Status          TransactionStatus `json:"status"`
	IsActive        bool              `json:"isActive"`
	AuditFields
}

// Mode returns the effective fix/unfix mode of the transaction.
func (t *MetalTransaction) Mode() TransactionMode {
	return ResolveMode(t.Fixed, t.Unfix)
}
