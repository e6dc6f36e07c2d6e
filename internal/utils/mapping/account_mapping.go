package mapping

import (
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/prodbooks/mfg_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		TenantID:    d.TenantID,
		Name:        d.Name,
		AccountType: models.AccountType(d.AccountType),
		Role:        string(d.Role),
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		Role:        domain.AccountRole(m.Role),
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
