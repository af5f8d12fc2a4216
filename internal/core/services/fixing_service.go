package services

import (
	"context"
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

type fixingService struct {
	fixingRepo   portsrepo.FixingRepository
	accountRepo  portsrepo.AccountRepositoryWithTx
	registryRepo portsrepo.RegistryRepositoryFacade
}

// NewFixingService creates the position fixing coordinator.
func NewFixingService(fixingRepo portsrepo.FixingRepository, accountRepo portsrepo.AccountRepositoryWithTx, registryRepo portsrepo.RegistryRepositoryFacade) portssvc.FixingSvcFacade {
	return &fixingService{fixingRepo: fixingRepo, accountRepo: accountRepo, registryRepo: registryRepo}
}

var _ portssvc.FixingSvcFacade = (*fixingService)(nil)

// fixingChanges converts a fixing into its party balance delta. A purchase
// fixing settles gold the house owes into cash owed; a sale fixing unwinds
// the opposite direction.
func fixingChanges(fixing domain.TransactionFixing) accounting.BalanceChanges {
	switch fixing.FixingType {
	case domain.FixingPurchase:
		return accounting.BalanceChanges{
			GoldBalance: fixing.PureWeight.Neg(),
			GoldValue:   fixing.TotalAmount.Neg(),
			CashBalance: fixing.TotalAmount,
		}
	default:
		return accounting.BalanceChanges{
			GoldBalance: fixing.PureWeight,
			GoldValue:   fixing.TotalAmount,
			CashBalance: fixing.TotalAmount.Neg(),
		}
	}
}

// CreateFixing locks a floating gold position to a cash value at the agreed
// bid rate, posting the settlement legs atomically.
func (s *fixingService) CreateFixing(ctx context.Context, req dto.CreateFixingRequest, actorID string) (*domain.TransactionFixing, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	kind := domain.FixingKind(req.FixingType)
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown fixing type %q", apperrors.ErrValidation, req.FixingType)
	}
	if !req.PureWeight.IsPositive() || !req.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: pure weight and total amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	fixing := domain.TransactionFixing{
		FixingID:      uuid.NewString(),
		FixingType:    kind,
		PartyCode:     req.PartyCode,
		PureWeight:    req.PureWeight,
		GoldBidValue:  req.GoldBidValue,
		TotalAmount:   req.TotalAmount,
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

	if err := s.fixingRepo.SaveFixingInTx(ctx, tx, fixing); err != nil {
		return nil, fmt.Errorf("failed to save fixing: %w", err)
	}

	if err := s.postFixing(ctx, tx, fixing, *party, actorID, now); err != nil {
		return nil, err
	}

	if err := s.accountRepo.ApplyBalanceChangesInTx(ctx, tx, party.Code, fixingChanges(fixing), actorID, now); err != nil {
		return nil, fmt.Errorf("failed to apply fixing balance changes: %w", err)
	}

	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Fixing created",
		slog.String("fixing_id", fixing.FixingID),
		slog.String("type", string(kind)),
		slog.String("party", req.PartyCode),
		slog.String("pure_weight", req.PureWeight.String()),
	)
	return &fixing, nil
}

// postFixing writes the fixing's registry legs: the fixing marker, the party
// gold movement, and the party cash movement.
func (s *fixingService) postFixing(ctx context.Context, tx pgx.Tx, fixing domain.TransactionFixing, party domain.Account, actorID string, now time.Time) error {
	baseID, err := utils.GenerateRegistryBaseID(now)
	if err != nil {
		return fmt.Errorf("failed to generate registry id: %w", err)
	}

	marker := domain.EntryPurchaseFixing
	if fixing.FixingType == domain.FixingSale {
		marker = domain.EntrySalesFixing
	}
	changes := fixingChanges(fixing)

	audit := domain.AuditFields{CreatedAt: now, CreatedBy: actorID, LastUpdatedAt: now, LastUpdatedBy: actorID}
	code := party.Code
	seq := 1
	leg := func(entryType domain.EntryType, amount decimal.Decimal, withParty bool, desc string) domain.RegistryEntry {
		debit, credit := decimal.Zero, decimal.Zero
		if amount.IsNegative() {
			credit = amount.Abs()
		} else {
			debit = amount
		}
		e := domain.RegistryEntry{
			RegistryID:    uuid.NewString(),
			TransactionID: fmt.Sprintf("%s-%03d", baseID, seq),
			SourceID:      fixing.FixingID,
			Type:          entryType,
			Value:         amount.Abs(),
			Debit:         debit,
			Credit:        credit,
			Description:   desc,
			Reference:     fixing.VoucherNumber,
			PureWeight:    fixing.PureWeight,
			GoldBidValue:  fixing.GoldBidValue,
			AuditFields:   audit,
		}
		if withParty {
			e.Party = &code
		}
		seq++
		return e
	}

	entries := []domain.RegistryEntry{
		leg(marker, fixing.TotalAmount, false, fmt.Sprintf("%s fixing for %s", fixing.FixingType, party.Code)),
		leg(domain.EntryPartyGoldBalance, changes.GoldBalance, true, fmt.Sprintf("Gold position fixed for %s", party.Code)),
		leg(domain.EntryPartyCashBalance, changes.CashBalance, true, fmt.Sprintf("Cash settlement for %s", party.Code)),
	}
	if err := s.registryRepo.SaveEntriesInTx(ctx, tx, entries); err != nil {
		return fmt.Errorf("failed to save fixing entries: %w", err)
	}
	return nil
}

// DeleteFixing reverses the fixing's balance effects, removes its registry
// rows, and deletes the document.
func (s *fixingService) DeleteFixing(ctx context.Context, fixingID string, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	fixing, err := s.fixingRepo.FindFixingByID(ctx, fixingID)
	if err != nil {
		return fmt.Errorf("fixing %s: %w", fixingID, err)
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	if _, err := s.accountRepo.FindPartyByCodeForUpdate(ctx, tx, fixing.PartyCode); err != nil {
		return fmt.Errorf("failed to lock party %s: %w", fixing.PartyCode, err)
	}

	if err := s.registryRepo.DeleteEntriesBySourceIDInTx(ctx, tx, fixing.FixingID); err != nil {
		return fmt.Errorf("failed to delete fixing entries: %w", err)
	}
	if err := s.accountRepo.ApplyBalanceChangesInTx(ctx, tx, fixing.PartyCode, fixingChanges(*fixing).Negate(), actorID, now); err != nil {
		return fmt.Errorf("failed to reverse fixing balance changes: %w", err)
	}
	if err := s.fixingRepo.DeleteFixingInTx(ctx, tx, fixingID); err != nil {
		return fmt.Errorf("failed to delete fixing: %w", err)
	}

	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return err
	}

	logger.Info("Fixing deleted", slog.String("fixing_id", fixingID))
	return nil
}

func (s *fixingService) GetFixingByID(ctx context.Context, fixingID string) (*domain.TransactionFixing, error) {
	fixing, err := s.fixingRepo.FindFixingByID(ctx, fixingID)
	if err != nil {
		return nil, fmt.Errorf("fixing %s: %w", fixingID, err)
	}
	return fixing, nil
}
