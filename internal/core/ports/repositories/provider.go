package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service layer at startup.
type RepositoryProvider struct {
	AccountRepo      AccountRepositoryWithTx
	MetalTxnRepo     MetalTransactionRepositoryWithTx
	RegistryRepo     RegistryRepositoryWithTx
	InventoryRepo    InventoryRepository
	FixingRepo       FixingRepository
	EntryRepo        EntryRepository
	FundTransferRepo FundTransferRepository
	UserRepo         UserRepository
}
