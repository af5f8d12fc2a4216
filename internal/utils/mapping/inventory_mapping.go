package mapping

import (
	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	"github.com/AurifyAE/bullionpro-backend/internal/models"
)

// ToDomainInventory converts a model row back to the domain form
func ToDomainInventory(m models.Inventory) domain.Inventory {
	return domain.Inventory{
		StockCode:   m.StockCode,
		Pieces:      m.Pieces,
		GrossWeight: m.GrossWeight,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInventoryLog converts a model row back to the domain form
func ToDomainInventoryLog(m models.InventoryLog) domain.InventoryLog {
	return domain.InventoryLog{
		LogID:           m.LogID,
		StockCode:       m.StockCode,
		VoucherCode:     m.VoucherCode,
		VoucherDate:     m.VoucherDate,
		GrossWeight:     m.GrossWeight,
		Action:          domain.InventoryAction(m.Action),
		TransactionType: domain.TransactionKind(m.TransactionType),
		Note:            m.Note,
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt,
	}
}
