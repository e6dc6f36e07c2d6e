package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ProductRepo   ProductRepositoryFacade
	BOMRepo       BOMRepositoryFacade
	InventoryRepo InventoryRepositoryFacade
	AccountRepo   AccountRepositoryFacade
	LedgerRepo    LedgerRepositoryFacade
	AssemblyRepo  AssemblyRepositoryFacade
	ExciseRepo    ExciseRepositoryFacade
	TxManager     TransactionManager
}
