package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AurifyAE/bullionpro-backend/internal/apperrors"
	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	portsrepo "github.com/AurifyAE/bullionpro-backend/internal/core/ports/repositories"
	"github.com/AurifyAE/bullionpro-backend/internal/models"
	"github.com/AurifyAE/bullionpro-backend/internal/utils/mapping"
)

type PgxFixingRepository struct {
	BaseRepository
}

// newPgxFixingRepository creates a new repository for fixing documents.
func newPgxFixingRepository(pool *pgxpool.Pool) portsrepo.FixingRepository {
	return &PgxFixingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FixingRepository = (*PgxFixingRepository)(nil)

func (r *PgxFixingRepository) SaveFixingInTx(ctx context.Context, tx pgx.Tx, fixing domain.TransactionFixing) error {
	m := mapping.ToModelFixing(fixing)
	query := `
		INSERT INTO transaction_fixings (fixing_id, fixing_type, party_code, pure_weight, gold_bid_value, total_amount, voucher_number, voucher_date, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, query,
		m.FixingID, m.FixingType, m.PartyCode, m.PureWeight, m.GoldBidValue, m.TotalAmount,
		m.VoucherNumber, m.VoucherDate, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: fixing voucher %s already exists", apperrors.ErrDuplicate, m.VoucherNumber)
		}
		return fmt.Errorf("failed to save fixing %s: %w", m.FixingID, err)
	}
	return nil
}

func (r *PgxFixingRepository) FindFixingByID(ctx context.Context, fixingID string) (*domain.TransactionFixing, error) {
	query := `
		SELECT fixing_id, fixing_type, party_code, pure_weight, gold_bid_value, total_amount, voucher_number, voucher_date, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM transaction_fixings WHERE fixing_id = $1;
	`
	var m models.TransactionFixing
	err := r.Pool.QueryRow(ctx, query, fixingID).Scan(
		&m.FixingID, &m.FixingType, &m.PartyCode, &m.PureWeight, &m.GoldBidValue, &m.TotalAmount,
		&m.VoucherNumber, &m.VoucherDate, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("fixing %s not found", fixingID))
		}
		return nil, fmt.Errorf("failed to find fixing %s: %w", fixingID, err)
	}
	fixing := mapping.ToDomainFixing(m)
	return &fixing, nil
}

func (r *PgxFixingRepository) DeleteFixingInTx(ctx context.Context, tx pgx.Tx, fixingID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM transaction_fixings WHERE fixing_id = $1;`, fixingID)
	if err != nil {
		return fmt.Errorf("failed to delete fixing %s: %w", fixingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("fixing %s not found", fixingID))
	}
	return nil
}

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for receipt/payment entries.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepository {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepository = (*PgxEntryRepository)(nil)

func (r *PgxEntryRepository) SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.Entry) error {
	m := mapping.ToModelEntry(entry)
	query := `
		INSERT INTO entries (entry_id, entry_type, party_code, amount, remarks, voucher_number, voucher_date, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		m.EntryID, m.EntryType, m.PartyCode, m.Amount, m.Remarks,
		m.VoucherNumber, m.VoucherDate, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: entry voucher %s already exists", apperrors.ErrDuplicate, m.VoucherNumber)
		}
		return fmt.Errorf("failed to save entry %s: %w", m.EntryID, err)
	}
	return nil
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	query := `
		SELECT entry_id, entry_type, party_code, amount, remarks, voucher_number, voucher_date, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM entries WHERE entry_id = $1;
	`
	var m models.Entry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID, &m.EntryType, &m.PartyCode, &m.Amount, &m.Remarks,
		&m.VoucherNumber, &m.VoucherDate, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("entry %s not found", entryID))
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	entry := mapping.ToDomainEntry(m)
	return &entry, nil
}

func (r *PgxEntryRepository) DeleteEntryInTx(ctx context.Context, tx pgx.Tx, entryID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("entry %s not found", entryID))
	}
	return nil
}

type PgxFundTransferRepository struct {
	BaseRepository
}

// newPgxFundTransferRepository creates a new repository for fund transfers.
func newPgxFundTransferRepository(pool *pgxpool.Pool) portsrepo.FundTransferRepository {
	return &PgxFundTransferRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FundTransferRepository = (*PgxFundTransferRepository)(nil)

func (r *PgxFundTransferRepository) SaveTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.FundTransfer) error {
	m := mapping.ToModelFundTransfer(transfer)
	query := `
		INSERT INTO fund_transfers (transfer_id, asset, from_party, to_party, amount, remarks, voucher_number, voucher_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		m.TransferID, m.Asset, m.FromParty, m.ToParty, m.Amount, m.Remarks,
		m.VoucherNumber, m.VoucherDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transfer voucher %s already exists", apperrors.ErrDuplicate, m.VoucherNumber)
		}
		return fmt.Errorf("failed to save transfer %s: %w", m.TransferID, err)
	}
	return nil
}

func (r *PgxFundTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.FundTransfer, error) {
	query := `
		SELECT transfer_id, asset, from_party, to_party, amount, remarks, voucher_number, voucher_date, created_at, created_by, last_updated_at, last_updated_by
		FROM fund_transfers WHERE transfer_id = $1;
	`
	var m models.FundTransfer
	err := r.Pool.QueryRow(ctx, query, transferID).Scan(
		&m.TransferID, &m.Asset, &m.FromParty, &m.ToParty, &m.Amount, &m.Remarks,
		&m.VoucherNumber, &m.VoucherDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transfer %s not found", transferID))
		}
		return nil, fmt.Errorf("failed to find transfer %s: %w", transferID, err)
	}
	transfer := mapping.ToDomainFundTransfer(m)
	return &transfer, nil
}
