package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/AurifyAE/bullionpro-backend/internal/apperrors"
	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	portsrepo "github.com/AurifyAE/bullionpro-backend/internal/core/ports/repositories"
	"github.com/AurifyAE/bullionpro-backend/internal/models"
	"github.com/AurifyAE/bullionpro-backend/internal/utils/mapping"
)

type PgxInventoryRepository struct {
	BaseRepository
}

// newPgxInventoryRepository creates a new repository for stock positions.
func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepository {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InventoryRepository = (*PgxInventoryRepository)(nil)

// FindByStockCode retrieves the on-hand position of one stock code.
func (r *PgxInventoryRepository) FindByStockCode(ctx context.Context, stockCode string) (*domain.Inventory, error) {
	query := `
		SELECT stock_code, pieces, gross_weight, created_at, created_by, last_updated_at, last_updated_by
		FROM inventories WHERE stock_code = $1;
	`
	var m models.Inventory
	err := r.Pool.QueryRow(ctx, query, stockCode).Scan(
		&m.StockCode, &m.Pieces, &m.GrossWeight,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("inventory %s not found", stockCode))
		}
		return nil, fmt.Errorf("failed to find inventory %s: %w", stockCode, err)
	}
	inv := mapping.ToDomainInventory(m)
	return &inv, nil
}

// AdjustInTx upserts the position by signed deltas and writes the audit log
// row. Negative resulting stock is allowed; the back office reconciles
// oversold positions separately.
func (r *PgxInventoryRepository) AdjustInTx(ctx context.Context, tx pgx.Tx, stockCode string, pieceDelta int64, weightDelta decimal.Decimal, voucher domain.VoucherContext, actorID string, now time.Time) (*domain.Inventory, error) {
	upsert := `
		INSERT INTO inventories (stock_code, pieces, gross_weight, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $4, $5)
		ON CONFLICT (stock_code) DO UPDATE
		SET pieces = inventories.pieces + EXCLUDED.pieces,
		    gross_weight = inventories.gross_weight + EXCLUDED.gross_weight,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by
		RETURNING stock_code, pieces, gross_weight, created_at, created_by, last_updated_at, last_updated_by;
	`
	var m models.Inventory
	err := tx.QueryRow(ctx, upsert, stockCode, pieceDelta, weightDelta, now, actorID).Scan(
		&m.StockCode, &m.Pieces, &m.GrossWeight,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust inventory %s: %w", stockCode, err)
	}

	action := domain.InventoryAdd
	if weightDelta.IsNegative() {
		action = domain.InventoryRemove
	}
	logQuery := `
		INSERT INTO inventory_logs (log_id, stock_code, voucher_code, voucher_date, gross_weight, action, transaction_type, note, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, logQuery,
		uuid.NewString(),
		stockCode,
		voucher.VoucherCode,
		voucher.VoucherDate,
		weightDelta.Abs(),
		string(action),
		string(voucher.TransactionType),
		voucher.Note,
		actorID,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to log inventory adjustment for %s: %w", stockCode, err)
	}

	inv := mapping.ToDomainInventory(m)
	return &inv, nil
}

// DeleteLogsByVoucherInTx removes every audit row of one voucher. Idempotent.
func (r *PgxInventoryRepository) DeleteLogsByVoucherInTx(ctx context.Context, tx pgx.Tx, voucherCode string) error {
	query := `DELETE FROM inventory_logs WHERE voucher_code = $1;`
	if _, err := tx.Exec(ctx, query, voucherCode); err != nil {
		return fmt.Errorf("failed to delete inventory logs for voucher %s: %w", voucherCode, err)
	}
	return nil
}

// ListLogsByVoucher retrieves the audit rows of one voucher, oldest first.
func (r *PgxInventoryRepository) ListLogsByVoucher(ctx context.Context, voucherCode string) ([]domain.InventoryLog, error) {
	query := `
		SELECT log_id, stock_code, voucher_code, voucher_date, gross_weight, action, transaction_type, note, created_by, created_at
		FROM inventory_logs WHERE voucher_code = $1 ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, voucherCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory logs for voucher %s: %w", voucherCode, err)
	}
	defer rows.Close()

	var logs []domain.InventoryLog
	for rows.Next() {
		var m models.InventoryLog
		if err := rows.Scan(
			&m.LogID, &m.StockCode, &m.VoucherCode, &m.VoucherDate,
			&m.GrossWeight, &m.Action, &m.TransactionType, &m.Note,
			&m.CreatedBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan inventory log: %w", err)
		}
		logs = append(logs, mapping.ToDomainInventoryLog(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory logs: %w", err)
	}
	return logs, nil
}
