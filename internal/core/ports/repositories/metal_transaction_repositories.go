package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
)

// MetalTransactionReader defines read operations for metal transactions.
type MetalTransactionReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.MetalTransaction, error)

	// ListTransactions retrieves a paginated list of active transactions,
	// newest voucher first.
	ListTransactions(ctx context.Context, limit int, offset int) ([]domain.MetalTransaction, error)
}

// MetalTransactionWriter defines write operations for metal transactions.
type MetalTransactionWriter interface {
	// SaveTransactionInTx inserts a new transaction document.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.MetalTransaction) error

	// UpdateTransactionInTx rewrites the mutable fields of an existing
	// transaction document.
	UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.MetalTransaction) error

	// DeleteTransactionInTx removes the transaction row.
	DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error

	// FindTransactionByIDForUpdate selects the transaction row and locks it
	// until the surrounding transaction finishes.
	FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.MetalTransaction, error)

	// UpdateTransactionStatus applies a lifecycle status change. The write is
	// conditional on the status the caller read; zero affected rows means the
	// transaction moved concurrently and the caller must not proceed.
	UpdateTransactionStatus(ctx context.Context, transactionID string, from, to domain.TransactionStatus, userID string, now time.Time) error
}

// MetalTransactionRepositoryFacade combines the transaction repository interfaces.
type MetalTransactionRepositoryFacade interface {
	MetalTransactionReader
	MetalTransactionWriter
}

// MetalTransactionRepositoryWithTx extends the facade with transaction capabilities.
type MetalTransactionRepositoryWithTx interface {
	MetalTransactionRepositoryFacade
	TransactionManager
}
