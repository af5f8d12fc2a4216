package mapping

import (
	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	"github.com/AurifyAE/bullionpro-backend/internal/models"
)

// ToModelRegistryEntry converts a domain RegistryEntry to a model row
func ToModelRegistryEntry(d domain.RegistryEntry) models.RegistryEntry {
	return models.RegistryEntry{
		RegistryID:      d.RegistryID,
		TransactionID:   d.TransactionID,
		SourceID:        d.SourceID,
		Type:            string(d.Type),
		Party:           d.Party,
		Value:           d.Value,
		Debit:           d.Debit,
		Credit:          d.Credit,
		PreviousBalance: d.PreviousBalance,
		RunningBalance:  d.RunningBalance,
		Description:     d.Description,
		Reference:       d.Reference,
		GrossWeight:     d.GrossWeight,
		PureWeight:      d.PureWeight,
		Purity:          d.Purity,
		GoldBidValue:    d.GoldBidValue,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRegistryEntry converts a model row back to the domain form
func ToDomainRegistryEntry(m models.RegistryEntry) domain.RegistryEntry {
	return domain.RegistryEntry{
		RegistryID:      m.RegistryID,
		TransactionID:   m.TransactionID,
		SourceID:        m.SourceID,
		Type:            domain.EntryType(m.Type),
		Party:           m.Party,
		Value:           m.Value,
		Debit:           m.Debit,
		Credit:          m.Credit,
		PreviousBalance: m.PreviousBalance,
		RunningBalance:  m.RunningBalance,
		Description:     m.Description,
		Reference:       m.Reference,
		GrossWeight:     m.GrossWeight,
		PureWeight:      m.PureWeight,
		Purity:          m.Purity,
		GoldBidValue:    m.GoldBidValue,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
