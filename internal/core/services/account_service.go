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

type accountService struct {
	accountRepo  portsrepo.AccountRepositoryWithTx
	registryRepo portsrepo.RegistryRepositoryFacade
}

// NewAccountService creates the party account manager.
func NewAccountService(accountRepo portsrepo.AccountRepositoryWithTx, registryRepo portsrepo.RegistryRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo, registryRepo: registryRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateParty onboards a party account with zero balances.
func (s *accountService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, actorID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	account := domain.Account{
		AccountID: uuid.NewString(),
		Code:      req.Code,
		Name:      req.Name,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create party %s: %w", req.Code, err)
	}

	logger.Info("Party created", slog.String("code", req.Code), slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", accountID, err)
	}
	return account, nil
}

func (s *accountService) GetPartyByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("party %s: %w", code, err)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return fmt.Errorf("account %s: %w", accountID, err)
	}
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, actorID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	return nil
}

// SetOpeningBalance seeds a party's starting position. The balance mutation
// and its registry rows happen in one database transaction. Opening balances
// persist no document of their own, so a retried voucher is caught by
// checking the registry under the party row lock.
func (s *accountService) SetOpeningBalance(ctx context.Context, partyCode string, req dto.OpeningBalanceRequest, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.GoldGrams.IsZero() && req.CashAmount.IsZero() {
		return fmt.Errorf("%w: opening balance has no non-zero component", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	party, err := s.accountRepo.FindPartyByCodeForUpdate(ctx, tx, partyCode)
	if err != nil {
		return fmt.Errorf("failed to lock party %s: %w", partyCode, err)
	}
	if !party.IsActive {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPartyInactive)
	}

	// The row lock serializes opening submissions for the party; a client
	// retry of an already-committed voucher must not double the seed.
	posted, err := s.registryRepo.CountEntriesByReferenceInTx(ctx, tx, req.VoucherNumber)
	if err != nil {
		return fmt.Errorf("failed to check voucher %s: %w", req.VoucherNumber, err)
	}
	if posted > 0 {
		return fmt.Errorf("%w: voucher %s already posted", apperrors.ErrDuplicate, req.VoucherNumber)
	}

	baseID, err := utils.GenerateRegistryBaseID(now)
	if err != nil {
		return fmt.Errorf("failed to generate registry id: %w", err)
	}
	sourceID := uuid.NewString()

	var entries []domain.RegistryEntry
	seq := 1
	appendLeg := func(entryType domain.EntryType, amount decimal.Decimal, desc string) {
		debit, credit := decimal.Zero, decimal.Zero
		if amount.IsNegative() {
			credit = amount.Abs()
		} else {
			debit = amount
		}
		code := party.Code
		entries = append(entries, domain.RegistryEntry{
			RegistryID:    uuid.NewString(),
			TransactionID: fmt.Sprintf("%s-%03d", baseID, seq),
			SourceID:      sourceID,
			Type:          entryType,
			Party:         &code,
			Value:         amount.Abs(),
			Debit:         debit,
			Credit:        credit,
			Description:   desc,
			Reference:     req.VoucherNumber,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		})
		seq++
	}
	if !req.GoldGrams.IsZero() {
		appendLeg(domain.EntryOpeningGoldBalance, req.GoldGrams, fmt.Sprintf("Opening gold balance for %s", party.Code))
		entries[len(entries)-1].PureWeight = req.GoldGrams.Abs()
	}
	if !req.CashAmount.IsZero() {
		appendLeg(domain.EntryOpeningCashBalance, req.CashAmount, fmt.Sprintf("Opening cash balance for %s", party.Code))
	}

	if err := s.registryRepo.SaveEntriesInTx(ctx, tx, entries); err != nil {
		return fmt.Errorf("failed to save opening entries: %w", err)
	}

	changes := accounting.BalanceChanges{
		GoldBalance: req.GoldGrams,
		GoldValue:   req.GoldValue,
		CashBalance: req.CashAmount,
	}
	if err := s.accountRepo.ApplyBalanceChangesInTx(ctx, tx, partyCode, changes, actorID, now); err != nil {
		return fmt.Errorf("failed to apply opening balance: %w", err)
	}

	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return err
	}

	logger.Info("Opening balance set",
		slog.String("party", partyCode),
		slog.String("gold_grams", req.GoldGrams.String()),
		slog.String("cash_amount", req.CashAmount.String()),
	)
	return nil
}
