package mapping

import (
	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	"github.com/AurifyAE/bullionpro-backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		Code:        d.Code,
		Name:        d.Name,
		GoldGrams:   d.Balances.GoldBalance.TotalGrams,
		GoldValue:   d.Balances.GoldBalance.TotalValue,
		CashAmount:  d.Balances.CashBalance.Amount,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID: m.AccountID,
		Code:      m.Code,
		Name:      m.Name,
		Balances: domain.Balances{
			GoldBalance: domain.GoldBalance{
				TotalGrams: m.GoldGrams,
				TotalValue: m.GoldValue,
			},
			CashBalance: domain.CashBalance{
				Amount: m.CashAmount,
			},
		},
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
