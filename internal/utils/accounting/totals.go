package accounting

import (
	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
)

// CalculateTotals reduces stock items into the aggregate totals record used
// by both posting construction and balance mutation. It is pure and
// deterministic: the two call sites must see identical figures.
//
// Purity is summed across items, not averaged. Statement reports were built
// on the summed figure, so it stays that way; see DESIGN.md.
func CalculateTotals(items []domain.StockItem, session domain.SessionTotals) domain.TransactionTotals {
	var t domain.TransactionTotals

	for _, item := range items {
		t.PureWeight = t.PureWeight.Add(item.PureWeight)
		t.GrossWeight = t.GrossWeight.Add(item.GrossWeight)
		t.Purity = t.Purity.Add(item.Purity)

		making := item.Totals.MakingChargesTotal
		if making.IsZero() {
			// Fall back to the flat per-item amount when no line total was computed.
			making = item.MakingCharges.Amount
		}
		t.MakingCharges = t.MakingCharges.Add(making)

		// Premium.Amount is signed: positive accumulates as premium, negative
		// as discount (by absolute value).
		switch {
		case item.Premium.Amount.IsPositive():
			t.Premium = t.Premium.Add(item.Premium.Amount)
		case item.Premium.Amount.IsNegative():
			t.Discount = t.Discount.Add(item.Premium.Amount.Abs())
		}

		t.VATAmount = t.VATAmount.Add(item.VAT.Amount)
		t.OtherChargesAmount = t.OtherChargesAmount.Add(item.OtherCharges.Amount)
		t.GoldValue = t.GoldValue.Add(item.Totals.BaseAmount)

		// First non-zero rate wins; rates are not averaged across items.
		if t.GoldBidValue.IsZero() && !item.MetalRate.IsZero() {
			t.GoldBidValue = item.MetalRate
		}
	}

	// The session total is authoritative, independent of the per-item sums.
	t.TotalAmount = session.TotalAmountAED
	return t
}

// ItemTotals reduces a single stock item, treating its own line total as the
// session amount. The posting builder works item by item on this.
func ItemTotals(item domain.StockItem) domain.TransactionTotals {
	return CalculateTotals(
		[]domain.StockItem{item},
		domain.SessionTotals{TotalAmountAED: item.Totals.ItemTotalAmount},
	)
}
