package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	"github.com/AurifyAE/bullionpro-backend/internal/utils/accounting"
)

// AccountReader defines read operations for party account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its party code regardless of
	// active state.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// FindActivePartyByCode retrieves an active account by party code and
	// fails with ErrNotFound when the party is absent or inactive.
	FindActivePartyByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for party account master data.
// Balance fields are exempt: they move only through AccountBalanceSupport.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// AccountBalanceSupport is the single authoritative mutation path for party
// balances. Both methods require an open transaction: the row lock taken by
// FindPartyByCodeForUpdate serializes concurrent mutations of one account.
type AccountBalanceSupport interface {
	// FindPartyByCodeForUpdate selects the account row and locks it until the
	// surrounding transaction finishes.
	FindPartyByCodeForUpdate(ctx context.Context, tx pgx.Tx, code string) (*domain.Account, error)

	// ApplyBalanceChangesInTx applies the signed deltas to the account's gold
	// and cash balances via atomic SQL increments.
	ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, code string, changes accounting.BalanceChanges, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountBalanceSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities.
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
