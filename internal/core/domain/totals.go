package domain

import (
	"github.com/shopspring/decimal"
)

// TransactionTotals is the fixed-shape aggregate reduced from a transaction's
// stock items. The same record feeds both posting construction and balance
// mutation; the two consumers must never diverge.
type TransactionTotals struct {
	PureWeight         decimal.Decimal `json:"pureWeight"`
	GrossWeight        decimal.Decimal `json:"grossWeight"`
	Purity             decimal.Decimal `json:"purity"`
	MakingCharges      decimal.Decimal `json:"makingCharges"`
	Premium            decimal.Decimal `json:"premium"`
	Discount           decimal.Decimal `json:"discount"`
	VATAmount          decimal.Decimal `json:"vatAmount"`
	OtherChargesAmount decimal.Decimal `json:"otherChargesAmount"`
	GoldValue          decimal.Decimal `json:"goldValue"`
	GoldBidValue       decimal.Decimal `json:"goldBidValue"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
}
