package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/prodbooks/mfg_ledger/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:   newPgxProductRepository(dbPool),
		BOMRepo:       newPgxBOMRepository(dbPool),
		InventoryRepo: newPgxInventoryRepository(dbPool),
		AccountRepo:   newPgxAccountRepository(dbPool),
		LedgerRepo:    newPgxLedgerRepository(dbPool),
		AssemblyRepo:  newPgxAssemblyRepository(dbPool),
		ExciseRepo:    newPgxExciseRepository(dbPool),
		TxManager:     &BaseRepository{Pool: dbPool},
	}
}
