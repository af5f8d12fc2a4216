package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/AurifyAE/bullionpro-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newPgxAccountRepository(dbPool),
		MetalTxnRepo:     newPgxMetalTransactionRepository(dbPool),
		RegistryRepo:     newPgxRegistryRepository(dbPool),
		InventoryRepo:    newPgxInventoryRepository(dbPool),
		FixingRepo:       newPgxFixingRepository(dbPool),
		EntryRepo:        newPgxEntryRepository(dbPool),
		FundTransferRepo: newPgxFundTransferRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
	}
}
