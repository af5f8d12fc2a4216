package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/AurifyAE/bullionpro-backend/internal/apperrors"
	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	portsrepo "github.com/AurifyAE/bullionpro-backend/internal/core/ports/repositories"
	portssvc "github.com/AurifyAE/bullionpro-backend/internal/core/ports/services"
	"github.com/AurifyAE/bullionpro-backend/internal/dto"
	"github.com/AurifyAE/bullionpro-backend/internal/middleware"
	"github.com/AurifyAE/bullionpro-backend/internal/utils"
	"github.com/AurifyAE/bullionpro-backend/internal/utils/accounting"
)

var (
	ErrNoStockItems     = errors.New("transaction must have at least one stock item")
	ErrUnknownKind      = errors.New("unknown transaction type")
	ErrPartyInactive    = errors.New("party is inactive")
	ErrNegativeQuantity = errors.New("quantity fields must not be negative")
	ErrInvalidPurity    = errors.New("purity must be within (0,1]")
	ErrStatusTransition = errors.New("status transition not allowed")
)

// metalTransactionService coordinates the lifecycle of metal transactions:
// create, update, delete, cancel. Every financial effect (postings, balance
// deltas, inventory adjustments) of one operation happens inside a single
// database transaction.
type metalTransactionService struct {
	txnRepo       portsrepo.MetalTransactionRepositoryWithTx
	accountRepo   portsrepo.AccountRepositoryFacade
	registryRepo  portsrepo.RegistryRepositoryFacade
	inventoryRepo portsrepo.InventoryRepository
}

// NewMetalTransactionService creates the lifecycle coordinator.
func NewMetalTransactionService(
	txnRepo portsrepo.MetalTransactionRepositoryWithTx,
	accountRepo portsrepo.AccountRepositoryFacade,
	registryRepo portsrepo.RegistryRepositoryFacade,
	inventoryRepo portsrepo.InventoryRepository,
) portssvc.MetalTransactionSvcFacade {
	return &metalTransactionService{
		txnRepo:       txnRepo,
		accountRepo:   accountRepo,
		registryRepo:  registryRepo,
		inventoryRepo: inventoryRepo,
	}
}

var _ portssvc.MetalTransactionSvcFacade = (*metalTransactionService)(nil)

// validateStockItems enforces the numeric invariants on transaction lines.
// Premium amounts are exempt from the sign check: negative encodes discount.
func validateStockItems(items []domain.StockItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNoStockItems)
	}
	one := decimal.NewFromInt(1)
	for i, item := range items {
		if item.Pieces < 0 {
			return fmt.Errorf("%w: item %d pieces: %s", apperrors.ErrValidation, i, ErrNegativeQuantity)
		}
		for _, v := range []decimal.Decimal{item.GrossWeight, item.PureWeight, item.WeightOz, item.MetalRate, item.MakingCharges.Amount, item.OtherCharges.Amount, item.VAT.Amount} {
			if v.IsNegative() {
				return fmt.Errorf("%w: item %d: %s", apperrors.ErrValidation, i, ErrNegativeQuantity)
			}
		}
		if !item.Purity.IsPositive() || item.Purity.GreaterThan(one) {
			return fmt.Errorf("%w: item %d: %s", apperrors.ErrValidation, i, ErrInvalidPurity)
		}
	}
	return nil
}

// CreateTransaction validates, persists, and posts a new metal transaction.
func (s *metalTransactionService) CreateTransaction(ctx context.Context, req dto.CreateMetalTransactionRequest, actorID string) (*domain.MetalTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	kind := domain.TransactionKind(req.TransactionType)
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %s %q", apperrors.ErrValidation, ErrUnknownKind, req.TransactionType)
	}
	items := dto.ToStockItems(req.StockItems)
	if err := validateStockItems(items); err != nil {
		return nil, err
	}

	// Eager not-found/inactive check before any write.
	if _, err := s.accountRepo.FindActivePartyByCode(ctx, req.PartyCode); err != nil {
		return nil, fmt.Errorf("party %s: %w", req.PartyCode, err)
	}

	now := time.Now().UTC()
	txn := domain.MetalTransaction{
		TransactionID:   uuid.NewString(),
		TransactionType: kind,
		Fixed:           req.Fixed,
		Unfix:           req.Unfix,
		PartyCode:       req.PartyCode,
		StockItems:      items,
		Totals:          req.Totals.ToSessionTotals(),
		VoucherNumber:   req.VoucherNumber,
		VoucherDate:     req.VoucherDate,
		Status:          domain.StatusConfirmed,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txnRepo.Rollback(ctx, tx)

	if err := s.txnRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	// Lock the party row; concurrent mutations of the same account serialize here.
	party, err := s.accountRepo.FindPartyByCodeForUpdate(ctx, tx, req.PartyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to lock party %s: %w", req.PartyCode, err)
	}
	if !party.IsActive {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPartyInactive)
	}

	if err := s.applyEffects(ctx, tx, txn, *party, actorID, now); err != nil {
		return nil, err
	}

	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Metal transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(kind)),
		slog.String("mode", string(txn.Mode())),
		slog.String("voucher", txn.VoucherNumber),
	)
	return &txn, nil
}

// applyEffects posts a transaction's registry entries, balance deltas, and
// inventory adjustments. Must run inside the caller's database transaction.
func (s *metalTransactionService) applyEffects(ctx context.Context, tx pgx.Tx, txn domain.MetalTransaction, party domain.Account, actorID string, now time.Time) error {
	totals := accounting.CalculateTotals(txn.StockItems, txn.Totals)

	baseID, err := utils.GenerateRegistryBaseID(now)
	if err != nil {
		return fmt.Errorf("failed to generate registry id: %w", err)
	}
	entries, err := accounting.BuildRegistryEntries(txn, party, baseID, actorID, now)
	if err != nil {
		return err
	}
	if err := s.registryRepo.SaveEntriesInTx(ctx, tx, entries); err != nil {
		return fmt.Errorf("failed to save registry entries: %w", err)
	}

	changes, err := accounting.CalculateBalanceChanges(txn.TransactionType, txn.Mode(), totals)
	if err != nil {
		return err
	}
	if err := s.accountRepo.ApplyBalanceChangesInTx(ctx, tx, party.Code, changes, actorID, now); err != nil {
		return fmt.Errorf("failed to apply balance changes: %w", err)
	}

	return s.adjustInventory(ctx, tx, txn, 1, actorID, now)
}

// adjustInventory applies the physical stock movement of each stock item.
// factor +1 applies the transaction's own direction, -1 undoes it.
func (s *metalTransactionService) adjustInventory(ctx context.Context, tx pgx.Tx, txn domain.MetalTransaction, factor int64, actorID string, now time.Time) error {
	direction := factor
	if txn.TransactionType.IsSaleLike() {
		direction = -factor
	}
	voucher := domain.VoucherContext{
		VoucherCode:     txn.VoucherNumber,
		VoucherDate:     txn.VoucherDate,
		TransactionType: txn.TransactionType,
	}
	for _, item := range txn.StockItems {
		pieceDelta := direction * item.Pieces
		weightDelta := item.GrossWeight.Mul(decimal.NewFromInt(direction))
		if _, err := s.inventoryRepo.AdjustInTx(ctx, tx, item.StockCode, pieceDelta, weightDelta, voucher, actorID, now); err != nil {
			return fmt.Errorf("failed to adjust inventory for %s: %w", item.StockCode, err)
		}
	}
	return nil
}

// reverseEffects undoes the stored transaction's financial footprint: all
// registry rows go, the negated balance delta is applied, inventory moves
// back, and the voucher's inventory logs are dropped. Must run inside the
// caller's database transaction, after the party row is locked.
func (s *metalTransactionService) reverseEffects(ctx context.Context, tx pgx.Tx, txn domain.MetalTransaction, partyCode string, actorID string, now time.Time) error {
	if err := s.registryRepo.DeleteEntriesBySourceIDInTx(ctx, tx, txn.TransactionID); err != nil {
		return fmt.Errorf("failed to delete registry entries: %w", err)
	}

	totals := accounting.CalculateTotals(txn.StockItems, txn.Totals)
	changes, err := accounting.CalculateBalanceChanges(txn.TransactionType, txn.Mode(), totals)
	if err != nil {
		return err
	}
	if err := s.accountRepo.ApplyBalanceChangesInTx(ctx, tx, partyCode, changes.Negate(), actorID, now); err != nil {
		return fmt.Errorf("failed to reverse balance changes: %w", err)
	}

	if err := s.adjustInventory(ctx, tx, txn, -1, actorID, now); err != nil {
		return err
	}
	// The reversal adjustments above logged under the same voucher; dropping
	// by voucher clears both the original rows and the reversal rows.
	if err := s.inventoryRepo.DeleteLogsByVoucherInTx(ctx, tx, txn.VoucherNumber); err != nil {
		return fmt.Errorf("failed to delete inventory logs: %w", err)
	}
	return nil
}

// UpdateTransaction reverses the stored transaction's effects, applies the
// allow-listed field updates, and reposts, all in one atomic unit. When the
// party reference changes, the reversal targets the old party and the new
// effects target the new one.
func (s *metalTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateMetalTransactionRequest, actorID string) (*domain.MetalTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txnRepo.Rollback(ctx, tx)

	existing, err := s.txnRepo.FindTransactionByIDForUpdate(ctx, tx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, err)
	}

	// A party change locks two rows; lock them in code order so two
	// opposing updates cannot deadlock.
	targetCode := existing.PartyCode
	if req.PartyCode != nil {
		targetCode = *req.PartyCode
	}
	first, second := existing.PartyCode, targetCode
	if second < first {
		first, second = second, first
	}
	locked := map[string]*domain.Account{}
	for _, code := range []string{first, second} {
		if _, ok := locked[code]; ok {
			continue
		}
		party, err := s.accountRepo.FindPartyByCodeForUpdate(ctx, tx, code)
		if err != nil {
			return nil, fmt.Errorf("failed to lock party %s: %w", code, err)
		}
		locked[code] = party
	}
	oldParty := locked[existing.PartyCode]

	if err := s.reverseEffects(ctx, tx, *existing, oldParty.Code, actorID, now); err != nil {
		return nil, err
	}

	// Allow-listed in-place updates; anything else on the document is immutable.
	updated := *existing
	if req.Fixed != nil {
		updated.Fixed = *req.Fixed
	}
	if req.Unfix != nil {
		updated.Unfix = *req.Unfix
	}
	if req.PartyCode != nil {
		updated.PartyCode = *req.PartyCode
	}
	if req.StockItems != nil {
		updated.StockItems = dto.ToStockItems(req.StockItems)
	}
	if req.Totals != nil {
		updated.Totals = req.Totals.ToSessionTotals()
	}
	if req.VoucherNumber != nil {
		updated.VoucherNumber = *req.VoucherNumber
	}
	if req.VoucherDate != nil {
		updated.VoucherDate = *req.VoucherDate
	}
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actorID

	// Removing every stock item would leave an invalid transaction; reject.
	if err := validateStockItems(updated.StockItems); err != nil {
		return nil, err
	}

	newParty := locked[updated.PartyCode]
	if updated.PartyCode != existing.PartyCode && !newParty.IsActive {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPartyInactive)
	}

	if err := s.txnRepo.UpdateTransactionInTx(ctx, tx, updated); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if err := s.applyEffects(ctx, tx, updated, *newParty, actorID, now); err != nil {
		return nil, err
	}

	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Metal transaction updated",
		slog.String("transaction_id", transactionID),
		slog.Bool("party_changed", updated.PartyCode != existing.PartyCode),
	)
	return &updated, nil
}

// DeleteTransaction undoes all financial effects of the stored transaction
// and removes the document, in one atomic unit.
func (s *metalTransactionService) DeleteTransaction(ctx context.Context, transactionID string, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.txnRepo.Rollback(ctx, tx)

	existing, err := s.txnRepo.FindTransactionByIDForUpdate(ctx, tx, transactionID)
	if err != nil {
		return fmt.Errorf("transaction %s: %w", transactionID, err)
	}

	if _, err := s.accountRepo.FindPartyByCodeForUpdate(ctx, tx, existing.PartyCode); err != nil {
		return fmt.Errorf("failed to lock party %s: %w", existing.PartyCode, err)
	}

	if err := s.reverseEffects(ctx, tx, *existing, existing.PartyCode, actorID, now); err != nil {
		return err
	}

	if err := s.txnRepo.DeleteTransactionInTx(ctx, tx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		return err
	}

	logger.Info("Metal transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// CancelTransaction is a logical cancellation: the status flips to cancelled
// and nothing financial moves. The postings and balance effects stay in
// place; use DeleteTransaction for a full reversal.
func (s *metalTransactionService) CancelTransaction(ctx context.Context, transactionID string, actorID string) error {
	return s.UpdateTransactionStatus(ctx, transactionID, domain.StatusCancelled, actorID)
}

// UpdateTransactionStatus moves the lifecycle state machine.
func (s *metalTransactionService) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("transaction %s: %w", transactionID, err)
	}
	if !existing.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s -> %s: %s", apperrors.ErrConflict, existing.Status, status, ErrStatusTransition)
	}

	// The write carries the status just read; a transition raced by another
	// request affects zero rows and comes back as a conflict.
	if err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, existing.Status, status, actorID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	logger.Info("Metal transaction status updated",
		slog.String("transaction_id", transactionID),
		slog.String("status", string(status)),
	)
	return nil
}

// GetTransactionByID retrieves a transaction document.
func (s *metalTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.MetalTransaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves a page of active transactions.
func (s *metalTransactionService) ListTransactions(ctx context.Context, limit, offset int) ([]domain.MetalTransaction, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.txnRepo.ListTransactions(ctx, limit, offset)
}
