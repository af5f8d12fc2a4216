package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
)

// ChargeRequest mirrors domain.ChargeDetail for request binding.
type ChargeRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Rate   decimal.Decimal `json:"rate"`
}

// OtherChargeRequest mirrors domain.OtherChargeDetail.
type OtherChargeRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Rate        decimal.Decimal `json:"rate"`
	Description string          `json:"description"`
}

// VATRequest mirrors domain.VATDetail.
type VATRequest struct {
	Percentage decimal.Decimal `json:"percentage"`
	Amount     decimal.Decimal `json:"amount"`
}

// StockItemTotalsRequest carries the client-computed per-line amounts.
type StockItemTotalsRequest struct {
	BaseAmount         decimal.Decimal `json:"baseAmount"`
	MakingChargesTotal decimal.Decimal `json:"makingChargesTotal"`
	PremiumTotal       decimal.Decimal `json:"premiumTotal"`
	SubTotal           decimal.Decimal `json:"subTotal"`
	VATAmount          decimal.Decimal `json:"vatAmount"`
	ItemTotalAmount    decimal.Decimal `json:"itemTotalAmount"`
}

// StockItemRequest is one transaction line as submitted by the client.
type StockItemRequest struct {
	StockCode     string                 `json:"stockCode" binding:"required"`
	Description   string                 `json:"description"`
	Pieces        int64                  `json:"pieces"`
	GrossWeight   decimal.Decimal        `json:"grossWeight"`
	Purity        decimal.Decimal        `json:"purity"`
	PureWeight    decimal.Decimal        `json:"pureWeight"`
	WeightOz      decimal.Decimal        `json:"weightOz"`
	MetalRate     decimal.Decimal        `json:"metalRate"`
	MakingCharges ChargeRequest          `json:"makingCharges"`
	Premium       ChargeRequest          `json:"premium"`
	OtherCharges  OtherChargeRequest     `json:"otherCharges"`
	VAT           VATRequest             `json:"vat"`
	Totals        StockItemTotalsRequest `json:"totals"`
}

// SessionTotalsRequest mirrors domain.SessionTotals.
type SessionTotalsRequest struct {
	TotalAmountAED decimal.Decimal `json:"totalAmountAED"`
	VATAmount      decimal.Decimal `json:"vatAmount"`
	NetAmount      decimal.Decimal `json:"netAmount"`
}

// CreateMetalTransactionRequest creates a purchase/sale/return document.
type CreateMetalTransactionRequest struct {
	TransactionType string               `json:"transactionType" binding:"required"`
	Fixed           bool                 `json:"fixed"`
	Unfix           bool                 `json:"unfix"`
	PartyCode       string               `json:"partyCode" binding:"required"`
	StockItems      []StockItemRequest   `json:"stockItems" binding:"required,min=1,dive"`
	Totals          SessionTotalsRequest `json:"totalAmountSession"`
	VoucherNumber   string               `json:"voucherNumber" binding:"required"`
	VoucherDate     time.Time            `json:"voucherDate" binding:"required"`
}

// UpdateMetalTransactionRequest carries the allow-listed in-place updates.
// Nil fields are left untouched; a raw merge of arbitrary fields is never done.
type UpdateMetalTransactionRequest struct {
	Fixed         *bool                 `json:"fixed"`
	Unfix         *bool                 `json:"unfix"`
	PartyCode     *string               `json:"partyCode"`
	StockItems    []StockItemRequest    `json:"stockItems"`
	Totals        *SessionTotalsRequest `json:"totalAmountSession"`
	VoucherNumber *string               `json:"voucherNumber"`
	VoucherDate   *time.Time            `json:"voucherDate"`
}

// UpdateTransactionStatusRequest moves the lifecycle state machine.
type UpdateTransactionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// MetalTransactionResponse is the API shape of a metal transaction.
type MetalTransactionResponse struct {
	TransactionID   string               `json:"transactionID"`
	TransactionType string               `json:"transactionType"`
	Mode            string               `json:"mode"`
	PartyCode       string               `json:"partyCode"`
	StockItems      []domain.StockItem   `json:"stockItems"`
	Totals          domain.SessionTotals `json:"totalAmountSession"`
	VoucherNumber   string               `json:"voucherNumber"`
	VoucherDate     time.Time            `json:"voucherDate"`
	Status          string               `json:"status"`
	IsActive        bool                 `json:"isActive"`
	CreatedAt       time.Time            `json:"createdAt"`
	LastUpdatedAt   time.Time            `json:"lastUpdatedAt"`
}

// ToStockItem converts a request line to its domain form.
func (r StockItemRequest) ToStockItem() domain.StockItem {
	return domain.StockItem{
		StockCode:   r.StockCode,
		Description: r.Description,
		Pieces:      r.Pieces,
		GrossWeight: r.GrossWeight,
		Purity:      r.Purity,
		PureWeight:  r.PureWeight,
		WeightOz:    r.WeightOz,
		MetalRate:   r.MetalRate,
		MakingCharges: domain.ChargeDetail{
			Amount: r.MakingCharges.Amount,
			Rate:   r.MakingCharges.Rate,
		},
		Premium: domain.ChargeDetail{
			Amount: r.Premium.Amount,
			Rate:   r.Premium.Rate,
		},
		OtherCharges: domain.OtherChargeDetail{
			Amount:      r.OtherCharges.Amount,
			Rate:        r.OtherCharges.Rate,
			Description: r.OtherCharges.Description,
		},
		VAT: domain.VATDetail{
			Percentage: r.VAT.Percentage,
			Amount:     r.VAT.Amount,
		},
		Totals: domain.StockItemTotals{
			BaseAmount:         r.Totals.BaseAmount,
			MakingChargesTotal: r.Totals.MakingChargesTotal,
			PremiumTotal:       r.Totals.PremiumTotal,
			SubTotal:           r.Totals.SubTotal,
			VATAmount:          r.Totals.VATAmount,
			ItemTotalAmount:    r.Totals.ItemTotalAmount,
		},
	}
}

// ToStockItems converts a slice of request lines.
func ToStockItems(reqs []StockItemRequest) []domain.StockItem {
	items := make([]domain.StockItem, len(reqs))
	for i, r := range reqs {
		items[i] = r.ToStockItem()
	}
	return items
}

// ToSessionTotals converts the session totals request.
func (r SessionTotalsRequest) ToSessionTotals() domain.SessionTotals {
	return domain.SessionTotals{
		TotalAmountAED: r.TotalAmountAED,
		VATAmount:      r.VATAmount,
		NetAmount:      r.NetAmount,
	}
}

// ToMetalTransactionResponse converts a domain transaction for the API.
func ToMetalTransactionResponse(t *domain.MetalTransaction) MetalTransactionResponse {
	return MetalTransactionResponse{
		TransactionID:   t.TransactionID,
		TransactionType: string(t.TransactionType),
		Mode:            string(t.Mode()),
		PartyCode:       t.PartyCode,
		StockItems:      t.StockItems,
		Totals:          t.Totals,
		VoucherNumber:   t.VoucherNumber,
		VoucherDate:     t.VoucherDate,
		Status:          string(t.Status),
		IsActive:        t.IsActive,
		CreatedAt:       t.CreatedAt,
		LastUpdatedAt:   t.LastUpdatedAt,
	}
}
