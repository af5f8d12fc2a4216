package models

import (
	"github.com/shopspring/decimal"
)

// Account is the accounts table row. Positive balances mean the house owes
// the party; balance columns move only via atomic increments inside a
// database transaction holding the row lock.
type Account struct {
	AccountID  string          `db:"account_id"`
	Code       string          `db:"code"`
	Name       string          `db:"name"`
	GoldGrams  decimal.Decimal `db:"gold_grams"`
	GoldValue  decimal.Decimal `db:"gold_value"`
	CashAmount decimal.Decimal `db:"cash_amount"`
	IsActive   bool            `db:"is_active"`
	AuditFields
}
