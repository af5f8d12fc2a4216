package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name  string
		fixed bool
		unfix bool
		want  TransactionMode
	}{
		{"fixed only", true, false, ModeFix},
		{"unfix only", false, true, ModeUnfix},
		{"both set", true, true, ModeUnfix},
		// Both flags clear defaults to unfix; legacy documents rely on this.
		{"both clear", false, false, ModeUnfix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveMode(tt.fixed, tt.unfix))
		})
	}
}

func TestTransactionKind_IsValid(t *testing.T) {
	for _, k := range []TransactionKind{Purchase, Sale, PurchaseReturn, SaleReturn} {
		assert.True(t, k.IsValid(), string(k))
	}
	assert.False(t, TransactionKind("melt").IsValid())
	assert.False(t, TransactionKind("").IsValid())
}

func TestTransactionKind_IsSaleLike(t *testing.T) {
	assert.True(t, Sale.IsSaleLike())
	assert.True(t, PurchaseReturn.IsSaleLike())
	assert.False(t, Purchase.IsSaleLike())
	assert.False(t, SaleReturn.IsSaleLike())
}

func TestTransactionStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StatusDraft.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusDraft.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCancelled))

	assert.False(t, StatusDraft.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusConfirmed))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusConfirmed))
}
