package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	"github.com/AurifyAE/bullionpro-backend/internal/utils/accounting"
)

func sampleTotals() domain.TransactionTotals {
	return domain.TransactionTotals{
		PureWeight:         dec("100"),
		GrossWeight:        dec("105"),
		MakingCharges:      dec("50"),
		Premium:            dec("10"),
		Discount:           dec("4"),
		VATAmount:          dec("5"),
		OtherChargesAmount: dec("3"),
		GoldValue:          dec("23455"),
		GoldBidValue:       dec("2345.5"),
		TotalAmount:        dec("23513"),
	}
}

func TestCalculateBalanceChanges_AllCells(t *testing.T) {
	totals := sampleTotals()

	tests := []struct {
		name     string
		kind     domain.TransactionKind
		mode     domain.TransactionMode
		gold     string
		goldVal  string
		netCash  string
	}{
		{"purchase unfix", domain.Purchase, domain.ModeUnfix, "100", "23455", "56"},
		{"sale unfix", domain.Sale, domain.ModeUnfix, "-100", "-23455", "-56"},
		{"purchase return unfix", domain.PurchaseReturn, domain.ModeUnfix, "-100", "-23455", "-56"},
		{"sale return unfix", domain.SaleReturn, domain.ModeUnfix, "100", "23455", "56"},
		{"purchase fix", domain.Purchase, domain.ModeFix, "0", "0", "23513"},
		{"sale fix", domain.Sale, domain.ModeFix, "0", "0", "-23513"},
		{"purchase return fix", domain.PurchaseReturn, domain.ModeFix, "0", "0", "-23513"},
		{"sale return fix", domain.SaleReturn, domain.ModeFix, "0", "0", "23513"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes, err := accounting.CalculateBalanceChanges(tt.kind, tt.mode, totals)
			require.NoError(t, err)
			assert.True(t, dec(tt.gold).Equal(changes.GoldBalance), "gold: %s", changes.GoldBalance)
			assert.True(t, dec(tt.goldVal).Equal(changes.GoldValue), "gold value: %s", changes.GoldValue)
			assert.True(t, dec(tt.netCash).Equal(changes.NetCash()), "net cash: %s", changes.NetCash())
		})
	}
}

func TestCalculateBalanceChanges_SaleNegatesPurchase(t *testing.T) {
	totals := sampleTotals()
	purchase, err := accounting.CalculateBalanceChanges(domain.Purchase, domain.ModeUnfix, totals)
	require.NoError(t, err)
	sale, err := accounting.CalculateBalanceChanges(domain.Sale, domain.ModeUnfix, totals)
	require.NoError(t, err)

	assert.Equal(t, purchase.Negate(), sale)
}

func TestCalculateBalanceChanges_FixModeFreezesGold(t *testing.T) {
	for _, kind := range []domain.TransactionKind{domain.Purchase, domain.Sale, domain.PurchaseReturn, domain.SaleReturn} {
		changes, err := accounting.CalculateBalanceChanges(kind, domain.ModeFix, sampleTotals())
		require.NoError(t, err)
		assert.True(t, changes.GoldBalance.IsZero(), "%s fix should not move gold", kind)
		assert.True(t, changes.GoldValue.IsZero(), "%s fix should not move gold value", kind)
	}
}

func TestCalculateBalanceChanges_UnknownKind(t *testing.T) {
	_, err := accounting.CalculateBalanceChanges(domain.TransactionKind("melt"), domain.ModeFix, sampleTotals())
	assert.Error(t, err)
}

func TestBalanceChanges_ReversalRoundTrips(t *testing.T) {
	changes, err := accounting.CalculateBalanceChanges(domain.Purchase, domain.ModeUnfix, sampleTotals())
	require.NoError(t, err)
	reversal := changes.Negate()

	gold := changes.GoldBalance.Add(reversal.GoldBalance)
	cash := changes.NetCash().Add(reversal.NetCash())
	assert.True(t, gold.IsZero(), "gold residue: %s", gold)
	assert.True(t, cash.Abs().LessThanOrEqual(dec("0.01")), "cash residue: %s", cash)
}

func TestBalanceChanges_NetCashRounds(t *testing.T) {
	changes := accounting.BalanceChanges{
		CashBalance:     dec("10.005"),
		PremiumBalance:  dec("0.001"),
		DiscountBalance: dec("0.0005"),
	}
	assert.True(t, dec("10.01").Equal(changes.NetCash()), "net cash: %s", changes.NetCash())
}

func TestBalanceChanges_IsZero(t *testing.T) {
	assert.True(t, accounting.BalanceChanges{}.IsZero())
	assert.False(t, accounting.BalanceChanges{GoldBalance: decimal.NewFromInt(1)}.IsZero())
}
