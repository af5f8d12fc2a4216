package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	"github.com/AurifyAE/bullionpro-backend/internal/models"
)

// ToModelMetalTransaction converts a domain MetalTransaction to a model row,
// serializing the stock items to their JSONB form.
func ToModelMetalTransaction(d domain.MetalTransaction) (models.MetalTransaction, error) {
	items, err := json.Marshal(d.StockItems)
	if err != nil {
		return models.MetalTransaction{}, fmt.Errorf("failed to marshal stock items: %w", err)
	}
	return models.MetalTransaction{
		TransactionID:   d.TransactionID,
		TransactionType: string(d.TransactionType),
		Fixed:           d.Fixed,
		Unfix:           d.Unfix,
		PartyCode:       d.PartyCode,
		StockItems:      items,
		TotalAmountAED:  d.Totals.TotalAmountAED,
		SessionVAT:      d.Totals.VATAmount,
		SessionNet:      d.Totals.NetAmount,
		VoucherNumber:   d.VoucherNumber,
		VoucherDate:     d.VoucherDate,
		Status:          string(d.Status),
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainMetalTransaction converts a model row back to the domain form.
func ToDomainMetalTransaction(m models.MetalTransaction) (domain.MetalTransaction, error) {
	var items []domain.StockItem
	if len(m.StockItems) > 0 {
		if err := json.Unmarshal(m.StockItems, &items); err != nil {
			return domain.MetalTransaction{}, fmt.Errorf("failed to unmarshal stock items: %w", err)
		}
	}
	return domain.MetalTransaction{
		TransactionID:   m.TransactionID,
		TransactionType: domain.TransactionKind(m.TransactionType),
		Fixed:           m.Fixed,
		Unfix:           m.Unfix,
		PartyCode:       m.PartyCode,
		StockItems:      items,
		Totals: domain.SessionTotals{
			TotalAmountAED: m.TotalAmountAED,
			VATAmount:      m.SessionVAT,
			NetAmount:      m.SessionNet,
		},
		VoucherNumber: m.VoucherNumber,
		VoucherDate:   m.VoucherDate,
		Status:        domain.TransactionStatus(m.Status),
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}, nil
}
