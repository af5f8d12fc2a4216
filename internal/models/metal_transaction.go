package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetalTransaction is the metal_transactions table row. Stock items are
// stored as a JSONB document; per-line queries go through the registry, not
// this table.
type MetalTransaction struct {
	TransactionID   string          `db:"transaction_id"`
	TransactionType string          `db:"transaction_type"`
	Fixed           bool            `db:"fixed"`
	Unfix           bool            `db:"unfix"`
	PartyCode       string          `db:"party_code"`
	StockItems      []byte          `db:"stock_items"` // JSONB
	TotalAmountAED  decimal.Decimal `db:"total_amount_aed"`
	SessionVAT      decimal.Decimal `db:"session_vat"`
	SessionNet      decimal.Decimal `db:"session_net"`
	VoucherNumber   string          `db:"voucher_number"`
	VoucherDate     time.Time       `db:"voucher_date"`
	Status          string          `db:"status"`
	IsActive        bool            `db:"is_active"`
	AuditFields
}
