package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
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

type entryService struct {
	entryRepo    portsrepo.EntryRepository
	accountRepo  portsrepo.AccountRepositoryWithTx
	registryRepo portsrepo.RegistryRepositoryFacade
}

// NewEntryService creates the cash receipt/payment coordinator.
func NewEntryService(entryRepo portsrepo.EntryRepository, accountRepo portsrepo.AccountRepositoryWithTx, registryRepo portsrepo.RegistryRepositoryFacade) portssvc.EntrySvcFacade {
	return &entryService{entryRepo: entryRepo, accountRepo: accountRepo, registryRepo: registryRepo}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// entryCashDelta returns the signed party cash movement of an entry.
// Receiving cash from the party settles what the house owed.
func entryCashDelta(entry domain.Entry) decimal.Decimal {
	if entry.EntryType == domain.EntryReceipt {
		return entry.Amount.Neg()
	}
	return entry.Amount
}

// CreateEntry records a standalone cash receipt or payment, posting the
// party cash leg with its previous and running balance snapshot.
func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, actorID string) (*domain.Entry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	kind := domain.EntryKind(req.EntryType)
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown entry type %q", apperrors.ErrValidation, req.EntryType)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	entry := domain.Entry{
		EntryID:       uuid.NewString(),
		EntryType:     kind,
		PartyCode:     req.PartyCode,
		Amount:        req.Amount,
		Remarks:       req.Remarks,
		VoucherNumber: req.VoucherNumber,
		VoucherDate:   req.VoucherDate,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	party, err := s.accountRepo.FindPartyByCodeForUpdate(ctx, tx, req.PartyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to lock party %s: %w", req.PartyCode, err)
	}
	if !party.IsActive {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPartyInactive)
	}

	if err := s.entryRepo.SaveEntryInTx(ctx, tx, entry); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	baseID, err := utils.GenerateRegistryBaseID(now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate registry id: %w", err)
	}

	delta := entryCashDelta(entry)
	// Snapshot taken under the row lock, so previous/running pairs are
	// consistent across concurrent entries.
	previous := party.Balances.CashBalance.Amount
	running := previous.Add(delta)

	debit, credit := decimal.Zero, decimal.Zero
	if delta.IsNegative() {
		credit = delta.Abs()
	} else {
		debit = delta
	}
	code := party.Code
	posting := domain.RegistryEntry{
		RegistryID:      uuid.NewString(),
		TransactionID:   fmt.Sprintf("%s-%03d", baseID, 1),
		SourceID:        entry.EntryID,
		Type:            domain.EntryPartyCashBalance,
		Party:           &code,
		Value:           entry.Amount,
		Debit:           debit,
		Credit:          credit,
		PreviousBalance: &previous,
		RunningBalance:  &running,
		Description:     fmt.Sprintf("Cash %s for %s", kind, party.Code),
		Reference:       entry.VoucherNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	if err := s.registryRepo.SaveEntriesInTx(ctx, tx, []domain.RegistryEntry{posting}); err != nil {
		return nil, fmt.Errorf("failed to save entry posting: %w", err)
	}

	if err := s.accountRepo.ApplyBalanceChangesInTx(ctx, tx, party.Code, accounting.BalanceChanges{CashBalance: delta}, actorID, now); err != nil {
		return nil, fmt.Errorf("failed to apply entry balance change: %w", err)
	}

	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("type", string(kind)),
		slog.String("party", req.PartyCode),
		slog.String("amount", req.Amount.String()),
	)
	return &entry, nil
}

// DeleteEntry reverses the entry's cash effect, removes its posting, and
// deletes the document.
func (s *entryService) DeleteEntry(ctx context.Context, entryID string, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("entry %s: %w", entryID, err)
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	if _, err := s.accountRepo.FindPartyByCodeForUpdate(ctx, tx, entry.PartyCode); err != nil {
		return fmt.Errorf("failed to lock party %s: %w", entry.PartyCode, err)
	}

	if err := s.registryRepo.DeleteEntriesBySourceIDInTx(ctx, tx, entry.EntryID); err != nil {
		return fmt.Errorf("failed to delete entry postings: %w", err)
	}
	if err := s.accountRepo.ApplyBalanceChangesInTx(ctx, tx, entry.PartyCode, accounting.BalanceChanges{CashBalance: entryCashDelta(*entry).Neg()}, actorID, now); err != nil {
		return fmt.Errorf("failed to reverse entry balance change: %w", err)
	}
	if err := s.entryRepo.DeleteEntryInTx(ctx, tx, entryID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return err
	}

	logger.Info("Entry deleted", slog.String("entry_id", entryID))
	return nil
}

func (s *entryService) GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", entryID, err)
	}
	return entry, nil
}
