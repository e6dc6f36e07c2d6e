package services

import (
	portsrepo "github.com/prodbooks/mfg_ledger/internal/core/ports/repositories"
	portssvc "github.com/prodbooks/mfg_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Leaf services first; the build orchestrator depends on them.
	container.Account = NewAccountService(repos.AccountRepo)
	container.Excise = NewExciseService(repos.ExciseRepo)
	container.Inventory = NewInventoryService(repos.InventoryRepo)
	container.BOM = NewBOMService(repos.BOMRepo, repos.ProductRepo)

	container.Build = NewBuildService(
		repos.TxManager,
		repos.ProductRepo,
		repos.BOMRepo,
		repos.InventoryRepo,
		repos.LedgerRepo,
		repos.AssemblyRepo,
		container.Account,
		container.Excise,
	)

	return container
}
