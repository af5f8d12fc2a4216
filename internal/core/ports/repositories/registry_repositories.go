package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
)

// RegistryReader defines read operations over ledger postings.
type RegistryReader interface {
	// FindEntriesBySourceID retrieves all postings created by one originating
	// document, in insertion order.
	FindEntriesBySourceID(ctx context.Context, sourceID string) ([]domain.RegistryEntry, error)

	// ListEntriesByParty retrieves a party's postings within a date range,
	// oldest first, for statement aggregation.
	ListEntriesByParty(ctx context.Context, partyCode string, from, to time.Time) ([]domain.RegistryEntry, error)

	// CountEntriesByReferenceInTx counts postings carrying the voucher
	// reference, inside the caller's transaction. Flows that persist no
	// document of their own use this to reject a retried voucher.
	CountEntriesByReferenceInTx(ctx context.Context, tx pgx.Tx, reference string) (int64, error)
}

// RegistryWriter defines write operations over ledger postings. Entries are
// immutable: there is insert and batch delete, never update.
type RegistryWriter interface {
	// SaveEntriesInTx inserts a batch of postings. Individual inserts are
	// queued unordered, but any failure in the batch fails the whole call.
	SaveEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.RegistryEntry) error

	// DeleteEntriesBySourceIDInTx removes every posting created by the given
	// document. Deleting an already-empty set is not an error.
	DeleteEntriesBySourceIDInTx(ctx context.Context, tx pgx.Tx, sourceID string) error

	// DeleteEntriesByReferenceInTx removes every posting carrying the given
	// voucher reference. Idempotent like DeleteEntriesBySourceIDInTx.
	DeleteEntriesByReferenceInTx(ctx context.Context, tx pgx.Tx, reference string) error
}

// RegistryRepositoryFacade combines all registry repository interfaces.
type RegistryRepositoryFacade interface {
	RegistryReader
	RegistryWriter
}

// RegistryRepositoryWithTx extends RegistryRepositoryFacade with transaction capabilities.
type RegistryRepositoryWithTx interface {
	RegistryRepositoryFacade
	TransactionManager
}
