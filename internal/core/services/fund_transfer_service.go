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

type fundTransferService struct {
	transferRepo portsrepo.FundTransferRepository
	accountRepo  portsrepo.AccountRepositoryWithTx
	registryRepo portsrepo.RegistryRepositoryFacade
}

// NewFundTransferService creates the inter-party transfer coordinator.
func NewFundTransferService(transferRepo portsrepo.FundTransferRepository, accountRepo portsrepo.AccountRepositoryWithTx, registryRepo portsrepo.RegistryRepositoryFacade) portssvc.FundTransferSvcFacade {
	return &fundTransferService{transferRepo: transferRepo, accountRepo: accountRepo, registryRepo: registryRepo}
}

var _ portssvc.FundTransferSvcFacade = (*fundTransferService)(nil)

// CreateTransfer moves cash or gold from one party to another. Both party
// rows are locked in code order so two opposing transfers cannot deadlock.
func (s *fundTransferService) CreateTransfer(ctx context.Context, req dto.CreateFundTransferRequest, actorID string) (*domain.FundTransfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	asset := domain.TransferAsset(req.Asset)
	if !asset.IsValid() {
		return nil, fmt.Errorf("%w: unknown transfer asset %q", apperrors.ErrValidation, req.Asset)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.FromParty == req.ToParty {
		return nil, fmt.Errorf("%w: transfer parties must differ", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	transfer := domain.FundTransfer{
		TransferID:    uuid.NewString(),
		Asset:         asset,
		FromParty:     req.FromParty,
		ToParty:       req.ToParty,
		Amount:        req.Amount,
		Remarks:       req.Remarks,
		VoucherNumber: req.VoucherNumber,
		VoucherDate:   req.VoucherDate,
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

	first, second := req.FromParty, req.ToParty
	if second < first {
		first, second = second, first
	}
	locked := map[string]*domain.Account{}
	for _, code := range []string{first, second} {
		party, err := s.accountRepo.FindPartyByCodeForUpdate(ctx, tx, code)
		if err != nil {
			return nil, fmt.Errorf("failed to lock party %s: %w", code, err)
		}
		if !party.IsActive {
			return nil, fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, code, ErrPartyInactive)
		}
		locked[code] = party
	}

	if err := s.transferRepo.SaveTransferInTx(ctx, tx, transfer); err != nil {
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	baseID, err := utils.GenerateRegistryBaseID(now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate registry id: %w", err)
	}

	entryType := domain.EntryPartyCashBalance
	if asset == domain.TransferGold {
		entryType = domain.EntryPartyGoldBalance
	}
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: actorID, LastUpdatedAt: now, LastUpdatedBy: actorID}
	fromCode, toCode := req.FromParty, req.ToParty
	entries := []domain.RegistryEntry{
		{
			RegistryID:    uuid.NewString(),
			TransactionID: fmt.Sprintf("%s-%03d", baseID, 1),
			SourceID:      transfer.TransferID,
			Type:          entryType,
			Party:         &fromCode,
			Value:         req.Amount,
			Credit:        req.Amount,
			Description:   fmt.Sprintf("Transfer out to %s", toCode),
			Reference:     req.VoucherNumber,
			AuditFields:   audit,
		},
		{
			RegistryID:    uuid.NewString(),
			TransactionID: fmt.Sprintf("%s-%03d", baseID, 2),
			SourceID:      transfer.TransferID,
			Type:          entryType,
			Party:         &toCode,
			Value:         req.Amount,
			Debit:         req.Amount,
			Description:   fmt.Sprintf("Transfer in from %s", fromCode),
			Reference:     req.VoucherNumber,
			AuditFields:   audit,
		},
	}
	if err := s.registryRepo.SaveEntriesInTx(ctx, tx, entries); err != nil {
		return nil, fmt.Errorf("failed to save transfer entries: %w", err)
	}

	outgoing, incoming := transferChanges(asset, req.Amount)
	if err := s.accountRepo.ApplyBalanceChangesInTx(ctx, tx, req.FromParty, outgoing, actorID, now); err != nil {
		return nil, fmt.Errorf("failed to debit %s: %w", req.FromParty, err)
	}
	if err := s.accountRepo.ApplyBalanceChangesInTx(ctx, tx, req.ToParty, incoming, actorID, now); err != nil {
		return nil, fmt.Errorf("failed to credit %s: %w", req.ToParty, err)
	}

	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Fund transfer created",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("asset", string(asset)),
		slog.String("from", req.FromParty),
		slog.String("to", req.ToParty),
		slog.String("amount", req.Amount.String()),
	)
	return &transfer, nil
}

// transferChanges returns the sender and receiver balance deltas.
func transferChanges(asset domain.TransferAsset, amount decimal.Decimal) (outgoing, incoming accounting.BalanceChanges) {
	if asset == domain.TransferGold {
		outgoing = accounting.BalanceChanges{GoldBalance: amount.Neg()}
		incoming = accounting.BalanceChanges{GoldBalance: amount}
		return outgoing, incoming
	}
	outgoing = accounting.BalanceChanges{CashBalance: amount.Neg()}
	incoming = accounting.BalanceChanges{CashBalance: amount}
	return outgoing, incoming
}

func (s *fundTransferService) GetTransferByID(ctx context.Context, transferID string) (*domain.FundTransfer, error) {
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return nil, fmt.Errorf("transfer %s: %w", transferID, err)
	}
	return transfer, nil
}
