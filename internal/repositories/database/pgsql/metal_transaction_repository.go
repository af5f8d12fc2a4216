package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AurifyAE/bullionpro-backend/internal/apperrors"
	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	portsrepo "github.com/AurifyAE/bullionpro-backend/internal/core/ports/repositories"
	"github.com/AurifyAE/bullionpro-backend/internal/models"
	"github.com/AurifyAE/bullionpro-backend/internal/utils/mapping"
)

type PgxMetalTransactionRepository struct {
	BaseRepository
}

// newPgxMetalTransactionRepository creates a new repository for metal transactions.
func newPgxMetalTransactionRepository(pool *pgxpool.Pool) portsrepo.MetalTransactionRepositoryWithTx {
	return &PgxMetalTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MetalTransactionRepositoryWithTx = (*PgxMetalTransactionRepository)(nil)

const metalTxnColumns = `transaction_id, transaction_type, fixed, unfix, party_code, stock_items, total_amount_aed, session_vat, session_net, voucher_number, voucher_date, status, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanMetalTransaction(row pgx.Row) (*domain.MetalTransaction, error) {
	var m models.MetalTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.TransactionType,
		&m.Fixed,
		&m.Unfix,
		&m.PartyCode,
		&m.StockItems,
		&m.TotalAmountAED,
		&m.SessionVAT,
		&m.SessionNet,
		&m.VoucherNumber,
		&m.VoucherDate,
		&m.Status,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	txn, err := mapping.ToDomainMetalTransaction(m)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// SaveTransactionInTx inserts a new transaction document.
func (r *PgxMetalTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.MetalTransaction) error {
	m, err := mapping.ToModelMetalTransaction(txn)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO metal_transactions (transaction_id, transaction_type, fixed, unfix, party_code, stock_items, total_amount_aed, session_vat, session_net, voucher_number, voucher_date, status, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, query,
		m.TransactionID,
		m.TransactionType,
		m.Fixed,
		m.Unfix,
		m.PartyCode,
		m.StockItems,
		m.TotalAmountAED,
		m.SessionVAT,
		m.SessionNet,
		m.VoucherNumber,
		m.VoucherDate,
		m.Status,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: voucher %s already exists", apperrors.ErrDuplicate, m.VoucherNumber)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// UpdateTransactionInTx rewrites the mutable fields of the document.
func (r *PgxMetalTransactionRepository) UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.MetalTransaction) error {
	m, err := mapping.ToModelMetalTransaction(txn)
	if err != nil {
		return err
	}
	query := `
		UPDATE metal_transactions
		SET fixed = $2, unfix = $3, party_code = $4, stock_items = $5,
		    total_amount_aed = $6, session_vat = $7, session_net = $8,
		    voucher_number = $9, voucher_date = $10,
		    last_updated_at = $11, last_updated_by = $12
		WHERE transaction_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.Fixed,
		m.Unfix,
		m.PartyCode,
		m.StockItems,
		m.TotalAmountAED,
		m.SessionVAT,
		m.SessionNet,
		m.VoucherNumber,
		m.VoucherDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: voucher %s already exists", apperrors.ErrDuplicate, m.VoucherNumber)
		}
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", m.TransactionID))
	}
	return nil
}

// DeleteTransactionInTx removes the transaction row.
func (r *PgxMetalTransactionRepository) DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error {
	query := `DELETE FROM metal_transactions WHERE transaction_id = $1;`
	tag, err := tx.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
	}
	return nil
}

// FindTransactionByID retrieves a transaction document.
func (r *PgxMetalTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.MetalTransaction, error) {
	query := `SELECT ` + metalTxnColumns + ` FROM metal_transactions WHERE transaction_id = $1;`
	txn, err := scanMetalTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// FindTransactionByIDForUpdate selects the transaction row FOR UPDATE.
func (r *PgxMetalTransactionRepository) FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.MetalTransaction, error) {
	query := `SELECT ` + metalTxnColumns + ` FROM metal_transactions WHERE transaction_id = $1 FOR UPDATE;`
	txn, err := scanMetalTransaction(tx.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
		}
		return nil, fmt.Errorf("failed to lock transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves a page of active transactions, newest voucher
// first.
func (r *PgxMetalTransactionRepository) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.MetalTransaction, error) {
	query := `
		SELECT ` + metalTxnColumns + `
		FROM metal_transactions
		WHERE is_active = TRUE
		ORDER BY voucher_date DESC, transaction_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.MetalTransaction
	for rows.Next() {
		txn, err := scanMetalTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return txns, nil
}

// UpdateTransactionStatus applies a lifecycle status change as a
// compare-and-set: the predicate on the status the caller read means a
// concurrent transition affects zero rows instead of clobbering a terminal
// state.
func (r *PgxMetalTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, from, to domain.TransactionStatus, userID string, now time.Time) error {
	query := `
		UPDATE metal_transactions
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE transaction_id = $1 AND status = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, transactionID, string(from), string(to), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update status of transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s is no longer %s", apperrors.ErrConflict, transactionID, from)
	}
	return nil
}
