package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
)

// FixingRepository persists transaction fixing documents.
type FixingRepository interface {
	SaveFixingInTx(ctx context.Context, tx pgx.Tx, fixing domain.TransactionFixing) error
	FindFixingByID(ctx context.Context, fixingID string) (*domain.TransactionFixing, error)
	DeleteFixingInTx(ctx context.Context, tx pgx.Tx, fixingID string) error
}

// EntryRepository persists cash receipt/payment documents.
type EntryRepository interface {
	SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.Entry) error
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)
	DeleteEntryInTx(ctx context.Context, tx pgx.Tx, entryID string) error
}

// FundTransferRepository persists fund transfer documents.
type FundTransferRepository interface {
	SaveTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.FundTransfer) error
	FindTransferByID(ctx context.Context, transferID string) (*domain.FundTransfer, error)
}
