package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
)

// StatementParams selects a party's registry rows for a date range.
type StatementParams struct {
	PartyCode string    `form:"partyCode" binding:"required"`
	From      time.Time `form:"from" time_format:"2006-01-02"`
	To        time.Time `form:"to" time_format:"2006-01-02"`
}

// RegistryEntryResponse is the API shape of one ledger posting.
type RegistryEntryResponse struct {
	TransactionID string          `json:"transactionId"`
	Type          string          `json:"type"`
	Party         *string         `json:"party"`
	Value         decimal.Decimal `json:"value"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Description   string          `json:"description"`
	Reference     string          `json:"reference"`
	GrossWeight   decimal.Decimal `json:"grossWeight"`
	PureWeight    decimal.Decimal `json:"pureWeight"`
	GoldBidValue  decimal.Decimal `json:"goldBidValue"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToRegistryEntryResponses converts domain entries for the API.
func ToRegistryEntryResponses(entries []domain.RegistryEntry) []RegistryEntryResponse {
	out := make([]RegistryEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = RegistryEntryResponse{
			TransactionID: e.TransactionID,
			Type:          string(e.Type),
			Party:         e.Party,
			Value:         e.Value,
			Debit:         e.Debit,
			Credit:        e.Credit,
			Description:   e.Description,
			Reference:     e.Reference,
			GrossWeight:   e.GrossWeight,
			PureWeight:    e.PureWeight,
			GoldBidValue:  e.GoldBidValue,
			CreatedAt:     e.CreatedAt,
		}
	}
	return out
}
