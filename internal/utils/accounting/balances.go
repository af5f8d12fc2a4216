package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
)

// BalanceChanges is the signed delta record a posted transaction applies to
// its party account. GoldBalance is in grams; the cash components are in AED.
// Negating every field yields the exact reversal of the original application.
type BalanceChanges struct {
	GoldBalance     decimal.Decimal
	GoldValue       decimal.Decimal
	CashBalance     decimal.Decimal
	PremiumBalance  decimal.Decimal
	DiscountBalance decimal.Decimal
	OtherCharges    decimal.Decimal
}

// Negate returns the change record that undoes c.
func (c BalanceChanges) Negate() BalanceChanges {
	return BalanceChanges{
		GoldBalance:     c.GoldBalance.Neg(),
		GoldValue:       c.GoldValue.Neg(),
		CashBalance:     c.CashBalance.Neg(),
		PremiumBalance:  c.PremiumBalance.Neg(),
		DiscountBalance: c.DiscountBalance.Neg(),
		OtherCharges:    c.OtherCharges.Neg(),
	}
}

// NetCash is the single figure applied to the account's cash balance:
// cash + premium - discount, rounded to 2dp so repeated applications do not
// accumulate floating drift.
func (c BalanceChanges) NetCash() decimal.Decimal {
	return c.CashBalance.Add(c.PremiumBalance).Sub(c.DiscountBalance).Round(2)
}

// IsZero reports whether applying c would change nothing.
func (c BalanceChanges) IsZero() bool {
	return c.GoldBalance.IsZero() && c.GoldValue.IsZero() && c.NetCash().IsZero()
}

type deltaKey struct {
	kind domain.TransactionKind
	mode domain.TransactionMode
}

// balanceDeltas is the fixed 8-entry (kind x mode) lookup. The cells are
// enumerated explicitly rather than derived from a sign formula: the fix/unfix
// asymmetries are business rules, and each cell has its own unit test.
//
// Unfix: gold moves by pure weight and base value; cash moves by making
// charges only, with premium/discount/other charges tracked separately.
// Fix: the gold leg settles entirely into cash, so gold deltas are zero and
// cash moves by the full session total.
var balanceDeltas = map[deltaKey]func(domain.TransactionTotals) BalanceChanges{
	{domain.Purchase, domain.ModeUnfix}: func(t domain.TransactionTotals) BalanceChanges {
		return BalanceChanges{
			GoldBalance:     t.PureWeight,
			GoldValue:       t.GoldValue,
			CashBalance:     t.MakingCharges,
			PremiumBalance:  t.Premium,
			DiscountBalance: t.Discount,
			OtherCharges:    t.OtherChargesAmount,
		}
	},
	{domain.Sale, domain.ModeUnfix}: func(t domain.TransactionTotals) BalanceChanges {
		return BalanceChanges{
			GoldBalance:     t.PureWeight.Neg(),
			GoldValue:       t.GoldValue.Neg(),
			CashBalance:     t.MakingCharges.Neg(),
			PremiumBalance:  t.Premium.Neg(),
			DiscountBalance: t.Discount.Neg(),
			OtherCharges:    t.OtherChargesAmount.Neg(),
		}
	},
	{domain.PurchaseReturn, domain.ModeUnfix}: func(t domain.TransactionTotals) BalanceChanges {
		// Returning purchased metal moves the balances the way a sale does.
		return BalanceChanges{
			GoldBalance:     t.PureWeight.Neg(),
			GoldValue:       t.GoldValue.Neg(),
			CashBalance:     t.MakingCharges.Neg(),
			PremiumBalance:  t.Premium.Neg(),
			DiscountBalance: t.Discount.Neg(),
			OtherCharges:    t.OtherChargesAmount.Neg(),
		}
	},
	{domain.SaleReturn, domain.ModeUnfix}: func(t domain.TransactionTotals) BalanceChanges {
		return BalanceChanges{
			GoldBalance:     t.PureWeight,
			GoldValue:       t.GoldValue,
			CashBalance:     t.MakingCharges,
			PremiumBalance:  t.Premium,
			DiscountBalance: t.Discount,
			OtherCharges:    t.OtherChargesAmount,
		}
	},
	{domain.Purchase, domain.ModeFix}: func(t domain.TransactionTotals) BalanceChanges {
		return BalanceChanges{CashBalance: t.TotalAmount}
	},
	{domain.Sale, domain.ModeFix}: func(t domain.TransactionTotals) BalanceChanges {
		return BalanceChanges{CashBalance: t.TotalAmount.Neg()}
	},
	{domain.PurchaseReturn, domain.ModeFix}: func(t domain.TransactionTotals) BalanceChanges {
		return BalanceChanges{CashBalance: t.TotalAmount.Neg()}
	},
	{domain.SaleReturn, domain.ModeFix}: func(t domain.TransactionTotals) BalanceChanges {
		return BalanceChanges{CashBalance: t.TotalAmount}
	},
}

// CalculateBalanceChanges resolves the (kind, mode) cell and applies it to
// the totals. Unknown combinations are a programming error surfaced to the
// caller rather than silently treated as zero.
func CalculateBalanceChanges(kind domain.TransactionKind, mode domain.TransactionMode, totals domain.TransactionTotals) (BalanceChanges, error) {
	fn, ok := balanceDeltas[deltaKey{kind, mode}]
	if !ok {
		return BalanceChanges{}, fmt.Errorf("no balance delta defined for kind %q mode %q", kind, mode)
	}
	return fn(totals), nil
}
