package domain

import (
	"github.com/shopspring/decimal"
)

// EntryType is the semantic tag on a registry posting. Downstream statement
// and reporting features consume these values as a stable schema; do not
// rename them without migrating stored rows.
type EntryType string

const (
	EntryPartyGoldBalance   EntryType = "PARTY_GOLD_BALANCE"
	EntryPartyCashBalance   EntryType = "PARTY_CASH_BALANCE"
	EntryGold               EntryType = "GOLD"
	EntryGoldStock          EntryType = "GOLD_STOCK"
	EntryMakingCharges      EntryType = "MAKING_CHARGES"
	EntryPremium            EntryType = "PREMIUM"
	EntryDiscount           EntryType = "DISCOUNT"
	EntryVATAmount          EntryType = "VAT_AMOUNT"
	EntryOtherCharges       EntryType = "OTHER_CHARGES"
	EntryPurchaseFixing     EntryType = "purchase-fixing"
	EntrySalesFixing        EntryType = "sales-fixing"
	EntryStockBalance       EntryType = "STOCK_BALANCE"
	EntryOpeningCashBalance EntryType = "OPENING_CASH_BALANCE"
	EntryOpeningGoldBalance EntryType = "OPENING_GOLD_BALANCE"
)

// RegistryEntry is one immutable debit/credit posting in the ledger.
// Corrections never edit a row in place: the owning batch is deleted and
// reinserted, or a reversing batch is appended.
// Party is nil for house-side (inventory/charge) legs.
type RegistryEntry struct {
	RegistryID      string           `json:"registryID"`    // Primary key (UUID)
	TransactionID   string           `json:"transactionID"` // Human-readable base id + per-leg suffix
	SourceID        string           `json:"sourceID"`      // Originating document id (metal txn, fixing, entry, transfer)
	Type            EntryType        `json:"type"`
	Party           *string          `json:"party"`
	Value           decimal.Decimal  `json:"value"`
	Debit           decimal.Decimal  `json:"debit"`
	Credit          decimal.Decimal  `json:"credit"`
	PreviousBalance *decimal.Decimal `json:"previousBalance,omitempty"`
	RunningBalance  *decimal.Decimal `json:"runningBalance,omitempty"`
	Description     string           `json:"description"`
	Reference       string           `json:"reference"` // Voucher number
	GrossWeight     decimal.Decimal  `json:"grossWeight"`
	PureWeight      decimal.Decimal  `json:"pureWeight"`
	Purity          decimal.Decimal  `json:"purity"`
	GoldBidValue    decimal.Decimal  `json:"goldBidValue"`
	AuditFields
}
