package services

// ServiceContainer bundles the service implementations handed to the HTTP
// layer at startup.
type ServiceContainer struct {
	MetalTxn     MetalTransactionSvcFacade
	Account      AccountSvcFacade
	Fixing       FixingSvcFacade
	Entry        EntrySvcFacade
	FundTransfer FundTransferSvcFacade
	Registry     RegistrySvcFacade
	User         UserSvcFacade
	Auth         AuthSvcFacade
}
