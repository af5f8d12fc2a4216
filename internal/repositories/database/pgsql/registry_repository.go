package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	portsrepo "github.com/AurifyAE/bullionpro-backend/internal/core/ports/repositories"
	"github.com/AurifyAE/bullionpro-backend/internal/models"
	"github.com/AurifyAE/bullionpro-backend/internal/utils/mapping"
)

type PgxRegistryRepository struct {
	BaseRepository
}

// newPgxRegistryRepository creates a new repository for ledger postings.
func newPgxRegistryRepository(pool *pgxpool.Pool) portsrepo.RegistryRepositoryWithTx {
	return &PgxRegistryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RegistryRepositoryWithTx = (*PgxRegistryRepository)(nil)

const registryColumns = `registry_id, transaction_id, source_id, type, party, value, debit, credit, previous_balance, running_balance, description, reference, gross_weight, pure_weight, purity, gold_bid_value, created_at, created_by, last_updated_at, last_updated_by`

func scanRegistryEntry(row pgx.Row) (*domain.RegistryEntry, error) {
	var m models.RegistryEntry
	err := row.Scan(
		&m.RegistryID,
		&m.TransactionID,
		&m.SourceID,
		&m.Type,
		&m.Party,
		&m.Value,
		&m.Debit,
		&m.Credit,
		&m.PreviousBalance,
		&m.RunningBalance,
		&m.Description,
		&m.Reference,
		&m.GrossWeight,
		&m.PureWeight,
		&m.Purity,
		&m.GoldBidValue,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainRegistryEntry(m)
	return &entry, nil
}

// SaveEntriesInTx inserts a batch of postings. Any failed insert fails the
// whole batch and the surrounding transaction rolls everything back.
func (r *PgxRegistryRepository) SaveEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.RegistryEntry) error {
	if len(entries) == 0 {
		return nil
	}
	query := `
		INSERT INTO registry_entries (registry_id, transaction_id, source_id, type, party, value, debit, credit, previous_balance, running_balance, description, reference, gross_weight, pure_weight, purity, gold_bid_value, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		m := mapping.ToModelRegistryEntry(entry)
		batch.Queue(query,
			m.RegistryID,
			m.TransactionID,
			m.SourceID,
			m.Type,
			m.Party,
			m.Value,
			m.Debit,
			m.Credit,
			m.PreviousBalance,
			m.RunningBalance,
			m.Description,
			m.Reference,
			m.GrossWeight,
			m.PureWeight,
			m.Purity,
			m.GoldBidValue,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert registry entries: %w", err)
	}
	return nil
}

// DeleteEntriesBySourceIDInTx removes every posting of one document.
// Deleting zero rows is fine: the document may never have posted.
func (r *PgxRegistryRepository) DeleteEntriesBySourceIDInTx(ctx context.Context, tx pgx.Tx, sourceID string) error {
	query := `DELETE FROM registry_entries WHERE source_id = $1;`
	if _, err := tx.Exec(ctx, query, sourceID); err != nil {
		return fmt.Errorf("failed to delete registry entries for source %s: %w", sourceID, err)
	}
	return nil
}

// DeleteEntriesByReferenceInTx removes every posting carrying the voucher
// reference.
func (r *PgxRegistryRepository) DeleteEntriesByReferenceInTx(ctx context.Context, tx pgx.Tx, reference string) error {
	query := `DELETE FROM registry_entries WHERE reference = $1;`
	if _, err := tx.Exec(ctx, query, reference); err != nil {
		return fmt.Errorf("failed to delete registry entries for reference %s: %w", reference, err)
	}
	return nil
}

// CountEntriesByReferenceInTx counts postings carrying the voucher reference.
func (r *PgxRegistryRepository) CountEntriesByReferenceInTx(ctx context.Context, tx pgx.Tx, reference string) (int64, error) {
	query := `SELECT COUNT(*) FROM registry_entries WHERE reference = $1;`
	var n int64
	if err := tx.QueryRow(ctx, query, reference).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count registry entries for reference %s: %w", reference, err)
	}
	return n, nil
}

// FindEntriesBySourceID retrieves a document's postings in insertion order.
func (r *PgxRegistryRepository) FindEntriesBySourceID(ctx context.Context, sourceID string) ([]domain.RegistryEntry, error) {
	query := `SELECT ` + registryColumns + ` FROM registry_entries WHERE source_id = $1 ORDER BY transaction_id;`
	rows, err := r.Pool.Query(ctx, query, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find registry entries for source %s: %w", sourceID, err)
	}
	defer rows.Close()
	return collectRegistryEntries(rows)
}

// ListEntriesByParty retrieves a party's postings within a date range,
// oldest first.
func (r *PgxRegistryRepository) ListEntriesByParty(ctx context.Context, partyCode string, from, to time.Time) ([]domain.RegistryEntry, error) {
	query := `
		SELECT ` + registryColumns + `
		FROM registry_entries
		WHERE party = $1 AND ($2::timestamptz IS NULL OR created_at >= $2) AND ($3::timestamptz IS NULL OR created_at < $3)
		ORDER BY created_at, transaction_id;
	`
	var fromArg, toArg interface{}
	if !from.IsZero() {
		fromArg = from
	}
	if !to.IsZero() {
		toArg = to
	}
	rows, err := r.Pool.Query(ctx, query, partyCode, fromArg, toArg)
	if err != nil {
		return nil, fmt.Errorf("failed to list registry entries for party %s: %w", partyCode, err)
	}
	defer rows.Close()
	return collectRegistryEntries(rows)
}

func collectRegistryEntries(rows pgx.Rows) ([]domain.RegistryEntry, error) {
	var entries []domain.RegistryEntry
	for rows.Next() {
		entry, err := scanRegistryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registry entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read registry entries: %w", err)
	}
	return entries, nil
}
