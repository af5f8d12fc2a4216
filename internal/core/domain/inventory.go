package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryAction tags an inventory log row with the direction of movement.
type InventoryAction string

const (
	InventoryAdd    InventoryAction = "add"
	InventoryRemove InventoryAction = "remove"
)

// Inventory is the on-hand position of one stock code.
type Inventory struct {
	StockCode   string          `json:"stockCode"`
	Pieces      int64           `json:"pieces"`
	GrossWeight decimal.Decimal `json:"grossWeight"`
	AuditFields
}

// InventoryLog is the audit row written alongside every inventory adjustment.
// Rows are keyed by voucher so an updated transaction can drop and rewrite
// its own log entries.
type InventoryLog struct {
	LogID           string          `json:"logID"`
	StockCode       string          `json:"stockCode"`
	VoucherCode     string          `json:"voucherCode"`
	VoucherDate     time.Time       `json:"voucherDate"`
	GrossWeight     decimal.Decimal `json:"grossWeight"`
	Action          InventoryAction `json:"action"`
	TransactionType TransactionKind `json:"transactionType"`
	Note            string          `json:"note"`
	CreatedBy       string          `json:"createdBy"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// VoucherContext carries the voucher identification handed to inventory
// adjustments so their audit rows trace back to the originating document.
type VoucherContext struct {
	VoucherCode     string          `json:"voucherCode"`
	VoucherDate     time.Time       `json:"voucherDate"`
	TransactionType TransactionKind `json:"transactionType"`
	Note            string          `json:"note"`
}
