package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
)

// CreatePartyRequest onboards a new party account.
type CreatePartyRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// OpeningBalanceRequest seeds a party's starting balances. Either component
// may be zero; only non-zero components produce registry rows.
type OpeningBalanceRequest struct {
	GoldGrams     decimal.Decimal `json:"goldGrams"`
	GoldValue     decimal.Decimal `json:"goldValue"`
	CashAmount    decimal.Decimal `json:"cashAmount"`
	VoucherNumber string          `json:"voucherNumber" binding:"required"`
	VoucherDate   time.Time       `json:"voucherDate" binding:"required"`
}

// AccountResponse is the API shape of a party account.
type AccountResponse struct {
	AccountID     string          `json:"accountID"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	GoldGrams     decimal.Decimal `json:"goldGrams"`
	GoldValue     decimal.Decimal `json:"goldValue"`
	CashAmount    decimal.Decimal `json:"cashAmount"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain account for the API.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     a.AccountID,
		Code:          a.Code,
		Name:          a.Name,
		GoldGrams:     a.Balances.GoldBalance.TotalGrams,
		GoldValue:     a.Balances.GoldBalance.TotalValue,
		CashAmount:    a.Balances.CashBalance.Amount,
		IsActive:      a.IsActive,
		CreatedAt:     a.CreatedAt,
		LastUpdatedAt: a.LastUpdatedAt,
	}
}

// ToAccountResponses converts a slice of accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}
