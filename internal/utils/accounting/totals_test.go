package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	"github.com/AurifyAE/bullionpro-backend/internal/utils/accounting"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func stockItem(gross, purity string) domain.StockItem {
	g := dec(gross)
	p := dec(purity)
	return domain.StockItem{
		StockCode:   "TT-995",
		Pieces:      1,
		GrossWeight: g,
		Purity:      p,
		PureWeight:  g.Mul(p),
	}
}

func TestCalculateTotals_SumsWeights(t *testing.T) {
	a := stockItem("100", "0.995")
	b := stockItem("50", "0.916")

	totals := accounting.CalculateTotals([]domain.StockItem{a, b}, domain.SessionTotals{})

	assert.True(t, dec("150").Equal(totals.GrossWeight), "gross weight: %s", totals.GrossWeight)
	assert.True(t, dec("145.3").Equal(totals.PureWeight), "pure weight: %s", totals.PureWeight)
	// Purity is summed across items, not averaged.
	assert.True(t, dec("1.911").Equal(totals.Purity), "purity: %s", totals.Purity)
}

func TestCalculateTotals_MakingChargesFallback(t *testing.T) {
	withTotal := stockItem("10", "1")
	withTotal.Totals.MakingChargesTotal = dec("25")
	withTotal.MakingCharges.Amount = dec("99") // ignored when the line total exists

	flatOnly := stockItem("10", "1")
	flatOnly.MakingCharges.Amount = dec("15")

	totals := accounting.CalculateTotals([]domain.StockItem{withTotal, flatOnly}, domain.SessionTotals{})
	assert.True(t, dec("40").Equal(totals.MakingCharges), "making charges: %s", totals.MakingCharges)
}

func TestCalculateTotals_SplitsPremiumAndDiscount(t *testing.T) {
	prem := stockItem("10", "1")
	prem.Premium.Amount = dec("12.5")

	disc := stockItem("10", "1")
	disc.Premium.Amount = dec("-7.25")

	totals := accounting.CalculateTotals([]domain.StockItem{prem, disc}, domain.SessionTotals{})
	assert.True(t, dec("12.5").Equal(totals.Premium), "premium: %s", totals.Premium)
	assert.True(t, dec("7.25").Equal(totals.Discount), "discount: %s", totals.Discount)
}

func TestCalculateTotals_FirstNonZeroBidRate(t *testing.T) {
	unrated := stockItem("10", "1")
	first := stockItem("10", "1")
	first.MetalRate = dec("2345.50")
	second := stockItem("10", "1")
	second.MetalRate = dec("2400")

	totals := accounting.CalculateTotals([]domain.StockItem{unrated, first, second}, domain.SessionTotals{})
	assert.True(t, dec("2345.50").Equal(totals.GoldBidValue), "gold bid: %s", totals.GoldBidValue)
}

func TestCalculateTotals_SessionTotalIsAuthoritative(t *testing.T) {
	item := stockItem("10", "1")
	item.Totals.BaseAmount = dec("100")
	item.Totals.ItemTotalAmount = dec("100")

	totals := accounting.CalculateTotals([]domain.StockItem{item}, domain.SessionTotals{TotalAmountAED: dec("5000")})
	assert.True(t, dec("5000").Equal(totals.TotalAmount), "total amount: %s", totals.TotalAmount)
	assert.True(t, dec("100").Equal(totals.GoldValue), "gold value: %s", totals.GoldValue)
}

func TestCalculateTotals_Deterministic(t *testing.T) {
	items := []domain.StockItem{stockItem("100", "0.995"), stockItem("55.5", "0.75")}
	session := domain.SessionTotals{TotalAmountAED: dec("1234.56")}

	first := accounting.CalculateTotals(items, session)
	second := accounting.CalculateTotals(items, session)
	assert.Equal(t, first, second)
}

func TestItemTotals_UsesLineTotalAsSessionAmount(t *testing.T) {
	item := stockItem("20", "0.916")
	item.Totals.ItemTotalAmount = dec("777")

	totals := accounting.ItemTotals(item)
	assert.True(t, dec("777").Equal(totals.TotalAmount), "total amount: %s", totals.TotalAmount)
	assert.True(t, item.PureWeight.Equal(totals.PureWeight))
}
