package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
)

// InventoryRepository is the boundary contract for physical-stock
// bookkeeping: adjust on-hand quantities by signed deltas and keep an audit
// log keyed by voucher. Quantity planning itself lives outside the core.
type InventoryRepository interface {
	// FindByStockCode retrieves the on-hand position for one stock code.
	FindByStockCode(ctx context.Context, stockCode string) (*domain.Inventory, error)

	// AdjustInTx applies signed piece/weight deltas to a stock code and
	// writes the audit log row. Returns the updated position.
	AdjustInTx(ctx context.Context, tx pgx.Tx, stockCode string, pieceDelta int64, weightDelta decimal.Decimal, voucher domain.VoucherContext, actorID string, now time.Time) (*domain.Inventory, error)

	// DeleteLogsByVoucherInTx removes the audit rows of one voucher so an
	// updated transaction can rewrite them. Idempotent.
	DeleteLogsByVoucherInTx(ctx context.Context, tx pgx.Tx, voucherCode string) error

	// ListLogsByVoucher retrieves the audit rows of one voucher.
	ListLogsByVoucher(ctx context.Context, voucherCode string) ([]domain.InventoryLog, error)
}
