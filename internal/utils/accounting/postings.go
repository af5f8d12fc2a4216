package accounting

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
)

type legSide int

const (
	houseLeg legSide = iota
	partyLeg
)

type legDirection int

const (
	debitLeg legDirection = iota
	creditLeg
)

// postingLeg is one row of a posting template: which semantic type, whether
// the row belongs to the party or the house, which column the magnitude goes
// to, and how the magnitude is selected from the item-scoped totals.
type postingLeg struct {
	entryType domain.EntryType
	side      legSide
	direction legDirection
	amount    func(domain.TransactionTotals) decimal.Decimal
	label     string
}

type templateKey struct {
	kind domain.TransactionKind
	mode domain.TransactionMode
}

func amtPure(t domain.TransactionTotals) decimal.Decimal      { return t.PureWeight }
func amtGross(t domain.TransactionTotals) decimal.Decimal     { return t.GrossWeight }
func amtMaking(t domain.TransactionTotals) decimal.Decimal    { return t.MakingCharges }
func amtPremium(t domain.TransactionTotals) decimal.Decimal   { return t.Premium }
func amtDiscount(t domain.TransactionTotals) decimal.Decimal  { return t.Discount }
func amtVAT(t domain.TransactionTotals) decimal.Decimal       { return t.VATAmount }
func amtOther(t domain.TransactionTotals) decimal.Decimal     { return t.OtherChargesAmount }
func amtGoldValue(t domain.TransactionTotals) decimal.Decimal { return t.GoldValue }

// amtNetCash is the unfix-mode party cash movement: making charges plus
// premium less discount. It can come out negative when the discount dominates;
// the builder then flips the leg to the opposite column.
func amtNetCash(t domain.TransactionTotals) decimal.Decimal {
	return t.MakingCharges.Add(t.Premium).Sub(t.Discount)
}

// postingTemplates enumerates all 8 (kind x mode) templates explicitly.
// The debit/credit assignment flips between purchase and sale, flips again
// for returns, and flips again between fix and unfix for the same component.
// These tables are the source of truth; do not try to collapse them into a
// sign formula.
var postingTemplates = map[templateKey][]postingLeg{
	{domain.Purchase, domain.ModeUnfix}: {
		{domain.EntryGold, houseLeg, debitLeg, amtPure, "gold received"},
		{domain.EntryGoldStock, houseLeg, debitLeg, amtGross, "stock received"},
		{domain.EntryPartyGoldBalance, partyLeg, creditLeg, amtPure, "unfixed gold owed to party"},
		{domain.EntryMakingCharges, houseLeg, debitLeg, amtMaking, "making charges"},
		{domain.EntryPremium, houseLeg, debitLeg, amtPremium, "premium"},
		{domain.EntryDiscount, houseLeg, creditLeg, amtDiscount, "discount"},
		{domain.EntryOtherCharges, houseLeg, debitLeg, amtOther, "other charges"},
		{domain.EntryVATAmount, houseLeg, debitLeg, amtVAT, "vat"},
		{domain.EntryPartyCashBalance, partyLeg, creditLeg, amtNetCash, "charges owed to party"},
	},
	{domain.Sale, domain.ModeUnfix}: {
		{domain.EntryGold, houseLeg, creditLeg, amtPure, "gold delivered"},
		{domain.EntryGoldStock, houseLeg, creditLeg, amtGross, "stock delivered"},
		{domain.EntryPartyGoldBalance, partyLeg, debitLeg, amtPure, "unfixed gold owed by party"},
		{domain.EntryMakingCharges, houseLeg, creditLeg, amtMaking, "making charges"},
		{domain.EntryPremium, houseLeg, creditLeg, amtPremium, "premium"},
		{domain.EntryDiscount, houseLeg, debitLeg, amtDiscount, "discount"},
		{domain.EntryOtherCharges, houseLeg, creditLeg, amtOther, "other charges"},
		{domain.EntryVATAmount, houseLeg, creditLeg, amtVAT, "vat"},
		{domain.EntryPartyCashBalance, partyLeg, debitLeg, amtNetCash, "charges owed by party"},
	},
	{domain.PurchaseReturn, domain.ModeUnfix}: {
		{domain.EntryGold, houseLeg, creditLeg, amtPure, "gold returned to party"},
		{domain.EntryGoldStock, houseLeg, creditLeg, amtGross, "stock returned to party"},
		{domain.EntryPartyGoldBalance, partyLeg, debitLeg, amtPure, "unfixed gold claim unwound"},
		{domain.EntryMakingCharges, houseLeg, creditLeg, amtMaking, "making charges reversed"},
		{domain.EntryPremium, houseLeg, creditLeg, amtPremium, "premium reversed"},
		{domain.EntryDiscount, houseLeg, debitLeg, amtDiscount, "discount reversed"},
		{domain.EntryOtherCharges, houseLeg, creditLeg, amtOther, "other charges reversed"},
		{domain.EntryVATAmount, houseLeg, creditLeg, amtVAT, "vat reversed"},
		{domain.EntryPartyCashBalance, partyLeg, debitLeg, amtNetCash, "charges clawed back"},
	},
	{domain.SaleReturn, domain.ModeUnfix}: {
		{domain.EntryGold, houseLeg, debitLeg, amtPure, "gold returned by party"},
		{domain.EntryGoldStock, houseLeg, debitLeg, amtGross, "stock returned by party"},
		{domain.EntryPartyGoldBalance, partyLeg, creditLeg, amtPure, "unfixed gold debt unwound"},
		{domain.EntryMakingCharges, houseLeg, debitLeg, amtMaking, "making charges reversed"},
		{domain.EntryPremium, houseLeg, debitLeg, amtPremium, "premium reversed"},
		{domain.EntryDiscount, houseLeg, creditLeg, amtDiscount, "discount reversed"},
		{domain.EntryOtherCharges, houseLeg, debitLeg, amtOther, "other charges reversed"},
		{domain.EntryVATAmount, houseLeg, debitLeg, amtVAT, "vat reversed"},
		{domain.EntryPartyCashBalance, partyLeg, creditLeg, amtNetCash, "charges refunded"},
	},
	{domain.Purchase, domain.ModeFix}: {
		{domain.EntryPurchaseFixing, partyLeg, creditLeg, amtPure, "purchase fixed at bid"},
		{domain.EntryPartyCashBalance, partyLeg, creditLeg, amtGoldValue, "fixed value owed to party"},
		{domain.EntryGold, houseLeg, debitLeg, amtPure, "gold received"},
		{domain.EntryGoldStock, houseLeg, debitLeg, amtGross, "stock received"},
		{domain.EntryMakingCharges, houseLeg, debitLeg, amtMaking, "making charges"},
		{domain.EntryPremium, houseLeg, debitLeg, amtPremium, "premium"},
		{domain.EntryDiscount, houseLeg, creditLeg, amtDiscount, "discount"},
		{domain.EntryOtherCharges, houseLeg, debitLeg, amtOther, "other charges"},
		{domain.EntryVATAmount, houseLeg, debitLeg, amtVAT, "vat"},
	},
	{domain.Sale, domain.ModeFix}: {
		{domain.EntrySalesFixing, partyLeg, debitLeg, amtPure, "sale fixed at bid"},
		{domain.EntryPartyCashBalance, partyLeg, debitLeg, amtGoldValue, "fixed value owed by party"},
		{domain.EntryGold, houseLeg, creditLeg, amtPure, "gold delivered"},
		{domain.EntryGoldStock, houseLeg, creditLeg, amtGross, "stock delivered"},
		{domain.EntryMakingCharges, houseLeg, creditLeg, amtMaking, "making charges"},
		{domain.EntryPremium, houseLeg, creditLeg, amtPremium, "premium"},
		{domain.EntryDiscount, houseLeg, debitLeg, amtDiscount, "discount"},
		{domain.EntryOtherCharges, houseLeg, creditLeg, amtOther, "other charges"},
		{domain.EntryVATAmount, houseLeg, creditLeg, amtVAT, "vat"},
	},
	{domain.PurchaseReturn, domain.ModeFix}: {
		{domain.EntryPurchaseFixing, partyLeg, debitLeg, amtPure, "fixed purchase unwound"},
		{domain.EntryPartyCashBalance, partyLeg, debitLeg, amtGoldValue, "fixed value clawed back"},
		{domain.EntryGold, houseLeg, creditLeg, amtPure, "gold returned to party"},
		{domain.EntryGoldStock, houseLeg, creditLeg, amtGross, "stock returned to party"},
		{domain.EntryMakingCharges, houseLeg, creditLeg, amtMaking, "making charges reversed"},
		{domain.EntryPremium, houseLeg, creditLeg, amtPremium, "premium reversed"},
		{domain.EntryDiscount, houseLeg, debitLeg, amtDiscount, "discount reversed"},
		{domain.EntryOtherCharges, houseLeg, creditLeg, amtOther, "other charges reversed"},
		{domain.EntryVATAmount, houseLeg, creditLeg, amtVAT, "vat reversed"},
	},
	{domain.SaleReturn, domain.ModeFix}: {
		{domain.EntrySalesFixing, partyLeg, creditLeg, amtPure, "fixed sale unwound"},
		{domain.EntryPartyCashBalance, partyLeg, creditLeg, amtGoldValue, "fixed value refunded"},
		{domain.EntryGold, houseLeg, debitLeg, amtPure, "gold returned by party"},
		{domain.EntryGoldStock, houseLeg, debitLeg, amtGross, "stock returned by party"},
		{domain.EntryMakingCharges, houseLeg, debitLeg, amtMaking, "making charges reversed"},
		{domain.EntryPremium, houseLeg, debitLeg, amtPremium, "premium reversed"},
		{domain.EntryDiscount, houseLeg, creditLeg, amtDiscount, "discount reversed"},
		{domain.EntryOtherCharges, houseLeg, debitLeg, amtOther, "other charges reversed"},
		{domain.EntryVATAmount, houseLeg, debitLeg, amtVAT, "vat reversed"},
	},
}

// BuildRegistryEntries turns a metal transaction into its ordered list of
// registry postings. Totals are recomputed per stock item, the (kind, mode)
// template is applied, and zero-magnitude legs are dropped entirely rather
// than posted as zeros. A negative selected amount flips the leg to the
// opposite column and posts the absolute value.
//
// Every entry shares the baseID and carries an ordinal suffix, so the whole
// batch can be matched and deleted by the owning transaction.
func BuildRegistryEntries(txn domain.MetalTransaction, party domain.Account, baseID, actorID string, now time.Time) ([]domain.RegistryEntry, error) {
	template, ok := postingTemplates[templateKey{txn.TransactionType, txn.Mode()}]
	if !ok {
		return nil, fmt.Errorf("no posting template for kind %q mode %q", txn.TransactionType, txn.Mode())
	}

	entries := make([]domain.RegistryEntry, 0, len(template)*len(txn.StockItems))
	seq := 0
	for _, item := range txn.StockItems {
		itemTotals := ItemTotals(item)

		for _, leg := range template {
			amount := leg.amount(itemTotals)
			if amount.IsZero() {
				continue
			}

			direction := leg.direction
			if amount.IsNegative() {
				if direction == debitLeg {
					direction = creditLeg
				} else {
					direction = debitLeg
				}
				amount = amount.Abs()
			}

			seq++
			entry := domain.RegistryEntry{
				RegistryID:    uuid.NewString(),
				TransactionID: fmt.Sprintf("%s-%03d", baseID, seq),
				SourceID:      txn.TransactionID,
				Type:          leg.entryType,
				Value:         amount,
				Description:   fmt.Sprintf("%s %s: %s", txn.TransactionType, txn.Mode(), leg.label),
				Reference:     txn.VoucherNumber,
				GrossWeight:   item.GrossWeight,
				PureWeight:    item.PureWeight,
				Purity:        item.Purity,
				GoldBidValue:  itemTotals.GoldBidValue,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					CreatedBy:     actorID,
					LastUpdatedAt: now,
					LastUpdatedBy: actorID,
				},
			}
			if leg.side == partyLeg {
				code := party.Code
				entry.Party = &code
			}
			if direction == debitLeg {
				entry.Debit = amount
			} else {
				entry.Credit = amount
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
