package mapping

import (
	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	"github.com/AurifyAE/bullionpro-backend/internal/models"
)

// ToModelFixing converts a domain TransactionFixing to a model row
func ToModelFixing(d domain.TransactionFixing) models.TransactionFixing {
	return models.TransactionFixing{
		FixingID:      d.FixingID,
		FixingType:    string(d.FixingType),
		PartyCode:     d.PartyCode,
		PureWeight:    d.PureWeight,
		GoldBidValue:  d.GoldBidValue,
		TotalAmount:   d.TotalAmount,
		VoucherNumber: d.VoucherNumber,
		VoucherDate:   d.VoucherDate,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFixing converts a model row back to the domain form
func ToDomainFixing(m models.TransactionFixing) domain.TransactionFixing {
	return domain.TransactionFixing{
		FixingID:      m.FixingID,
		FixingType:    domain.FixingKind(m.FixingType),
		PartyCode:     m.PartyCode,
		PureWeight:    m.PureWeight,
		GoldBidValue:  m.GoldBidValue,
		TotalAmount:   m.TotalAmount,
		VoucherNumber: m.VoucherNumber,
		VoucherDate:   m.VoucherDate,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelEntry converts a domain Entry to a model row
func ToModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		EntryID:       d.EntryID,
		EntryType:     string(d.EntryType),
		PartyCode:     d.PartyCode,
		Amount:        d.Amount,
		Remarks:       d.Remarks,
		VoucherNumber: d.VoucherNumber,
		VoucherDate:   d.VoucherDate,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a model row back to the domain form
func ToDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:       m.EntryID,
		EntryType:     domain.EntryKind(m.EntryType),
		PartyCode:     m.PartyCode,
		Amount:        m.Amount,
		Remarks:       m.Remarks,
		VoucherNumber: m.VoucherNumber,
		VoucherDate:   m.VoucherDate,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelFundTransfer converts a domain FundTransfer to a model row
func ToModelFundTransfer(d domain.FundTransfer) models.FundTransfer {
	return models.FundTransfer{
		TransferID:    d.TransferID,
		Asset:         string(d.Asset),
		FromParty:     d.FromParty,
		ToParty:       d.ToParty,
		Amount:        d.Amount,
		Remarks:       d.Remarks,
		VoucherNumber: d.VoucherNumber,
		VoucherDate:   d.VoucherDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFundTransfer converts a model row back to the domain form
func ToDomainFundTransfer(m models.FundTransfer) domain.FundTransfer {
	return domain.FundTransfer{
		TransferID:    m.TransferID,
		Asset:         domain.TransferAsset(m.Asset),
		FromParty:     m.FromParty,
		ToParty:       m.ToParty,
		Amount:        m.Amount,
		Remarks:       m.Remarks,
		VoucherNumber: m.VoucherNumber,
		VoucherDate:   m.VoucherDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
