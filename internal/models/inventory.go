package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory is the inventories table row: on-hand position per stock code.
type Inventory struct {
	StockCode   string          `db:"stock_code"`
	Pieces      int64           `db:"pieces"`
	GrossWeight decimal.Decimal `db:"gross_weight"`
	AuditFields
}

// InventoryLog is the inventory_logs table row, keyed by voucher so an
// updated transaction can drop and rewrite its own rows.
type InventoryLog struct {
	LogID           string          `db:"log_id"`
	StockCode       string          `db:"stock_code"`
	VoucherCode     string          `db:"voucher_code"`
	VoucherDate     time.Time       `db:"voucher_date"`
	GrossWeight     decimal.Decimal `db:"gross_weight"`
	Action          string          `db:"action"`
	TransactionType string          `db:"transaction_type"`
	Note            string          `db:"note"`
	CreatedBy       string          `db:"created_by"`
	CreatedAt       time.Time       `db:"created_at"`
}
