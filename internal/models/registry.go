package models

import (
	"github.com/shopspring/decimal"
)

// RegistryEntry is the registry_entries table row. Rows are immutable after
// insert; corrections delete the owning batch and reinsert.
type RegistryEntry struct {
	RegistryID      string           `db:"registry_id"`
	TransactionID   string           `db:"transaction_id"`
	SourceID        string           `db:"source_id"`
	Type            string           `db:"type"`
	Party           *string          `db:"party"` // NULL for house-side legs
	Value           decimal.Decimal  `db:"value"`
	Debit           decimal.Decimal  `db:"debit"`
	Credit          decimal.Decimal  `db:"credit"`
	PreviousBalance *decimal.Decimal `db:"previous_balance"`
	RunningBalance  *decimal.Decimal `db:"running_balance"`
	Description     string           `db:"description"`
	Reference       string           `db:"reference"`
	GrossWeight     decimal.Decimal  `db:"gross_weight"`
	PureWeight      decimal.Decimal  `db:"pure_weight"`
	Purity          decimal.Decimal  `db:"purity"`
	GoldBidValue    decimal.Decimal  `db:"gold_bid_value"`
	AuditFields
}
