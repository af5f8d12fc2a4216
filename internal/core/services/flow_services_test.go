package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/AurifyAE/bullionpro-backend/internal/apperrors"
	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	portssvc "github.com/AurifyAE/bullionpro-backend/internal/core/ports/services"
	"github.com/AurifyAE/bullionpro-backend/internal/core/services"
	"github.com/AurifyAE/bullionpro-backend/internal/dto"
	"github.com/AurifyAE/bullionpro-backend/internal/utils/accounting"
)

type EntryServiceTestSuite struct {
	suite.Suite
	entryRepo    *MockEntryRepository
	accountRepo  *MockAccountRepository
	registryRepo *MockRegistryRepository
	service      portssvc.EntrySvcFacade
}

func (s *EntryServiceTestSuite) SetupTest() {
	s.entryRepo = new(MockEntryRepository)
	s.accountRepo = new(MockAccountRepository)
	s.registryRepo = new(MockRegistryRepository)
	s.service = services.NewEntryService(s.entryRepo, s.accountRepo, s.registryRepo)
}

func (s *EntryServiceTestSuite) expectTx() {
	s.accountRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	s.accountRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	s.accountRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (s *EntryServiceTestSuite) TestCreateReceiptSettlesPartyCash() {
	ctx := context.Background()
	party := activeParty("CUST-007")
	party.Balances.CashBalance.Amount = dec("800")

	s.expectTx()
	s.accountRepo.On("FindPartyByCodeForUpdate", mock.Anything, mock.Anything, "CUST-007").Return(party, nil).Once()
	s.entryRepo.On("SaveEntryInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.Entry")).Return(nil).Once()

	var posted []domain.RegistryEntry
	s.registryRepo.On("SaveEntriesInTx", mock.Anything, mock.Anything, mock.AnythingOfType("[]domain.RegistryEntry")).
		Run(func(args mock.Arguments) {
			posted = args.Get(2).([]domain.RegistryEntry)
		}).Return(nil).Once()

	var applied accounting.BalanceChanges
	s.accountRepo.On("ApplyBalanceChangesInTx", mock.Anything, mock.Anything, "CUST-007", mock.AnythingOfType("accounting.BalanceChanges"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			applied = args.Get(3).(accounting.BalanceChanges)
		}).Return(nil).Once()

	entry, err := s.service.CreateEntry(ctx, dto.CreateEntryRequest{
		EntryType:     "receipt",
		PartyCode:     "CUST-007",
		Amount:        dec("500"),
		VoucherNumber: "RCP-001",
		VoucherDate:   time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
	}, "user-1")
	s.Require().NoError(err)
	s.Equal(domain.EntryReceipt, entry.EntryType)

	// Cash came in, so the house owes 500 less.
	s.True(applied.CashBalance.Equal(dec("-500")), "cash delta was %s", applied.CashBalance)

	s.Require().Len(posted, 1)
	leg := posted[0]
	s.Equal(domain.EntryPartyCashBalance, leg.Type)
	s.True(leg.Credit.Equal(dec("500")), "credit was %s", leg.Credit)
	s.True(leg.Debit.IsZero())
	s.Require().NotNil(leg.PreviousBalance)
	s.Require().NotNil(leg.RunningBalance)
	s.True(leg.PreviousBalance.Equal(dec("800")), "previous was %s", leg.PreviousBalance)
	s.True(leg.RunningBalance.Equal(dec("300")), "running was %s", leg.RunningBalance)

	s.accountRepo.AssertExpectations(s.T())
	s.registryRepo.AssertExpectations(s.T())
}

func (s *EntryServiceTestSuite) TestCreatePaymentIncreasesPartyCash() {
	ctx := context.Background()
	party := activeParty("SUP-001")

	s.expectTx()
	s.accountRepo.On("FindPartyByCodeForUpdate", mock.Anything, mock.Anything, "SUP-001").Return(party, nil).Once()
	s.entryRepo.On("SaveEntryInTx", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.registryRepo.On("SaveEntriesInTx", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	var applied accounting.BalanceChanges
	s.accountRepo.On("ApplyBalanceChangesInTx", mock.Anything, mock.Anything, "SUP-001", mock.AnythingOfType("accounting.BalanceChanges"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			applied = args.Get(3).(accounting.BalanceChanges)
		}).Return(nil).Once()

	_, err := s.service.CreateEntry(ctx, dto.CreateEntryRequest{
		EntryType:     "payment",
		PartyCode:     "SUP-001",
		Amount:        dec("250"),
		VoucherNumber: "PAY-001",
		VoucherDate:   time.Now(),
	}, "user-1")
	s.Require().NoError(err)
	s.True(applied.CashBalance.Equal(dec("250")), "cash delta was %s", applied.CashBalance)
}

func (s *EntryServiceTestSuite) TestCreateRejectsNonPositiveAmount() {
	_, err := s.service.CreateEntry(context.Background(), dto.CreateEntryRequest{
		EntryType: "receipt",
		PartyCode: "CUST-007",
		Amount:    dec("0"),
	}, "user-1")
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.accountRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *EntryServiceTestSuite) TestDeleteReversesCashDelta() {
	ctx := context.Background()
	entryID := uuid.NewString()
	stored := &domain.Entry{
		EntryID:       entryID,
		EntryType:     domain.EntryReceipt,
		PartyCode:     "CUST-007",
		Amount:        dec("500"),
		VoucherNumber: "RCP-001",
		IsActive:      true,
	}

	s.entryRepo.On("FindEntryByID", ctx, entryID).Return(stored, nil).Once()
	s.expectTx()
	s.accountRepo.On("FindPartyByCodeForUpdate", mock.Anything, mock.Anything, "CUST-007").Return(activeParty("CUST-007"), nil).Once()
	s.registryRepo.On("DeleteEntriesBySourceIDInTx", mock.Anything, mock.Anything, entryID).Return(nil).Once()

	var applied accounting.BalanceChanges
	s.accountRepo.On("ApplyBalanceChangesInTx", mock.Anything, mock.Anything, "CUST-007", mock.AnythingOfType("accounting.BalanceChanges"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			applied = args.Get(3).(accounting.BalanceChanges)
		}).Return(nil).Once()
	s.entryRepo.On("DeleteEntryInTx", mock.Anything, mock.Anything, entryID).Return(nil).Once()

	err := s.service.DeleteEntry(ctx, entryID, "user-2")
	s.Require().NoError(err)

	// The receipt took 500 off the balance; the reversal puts it back.
	s.True(applied.CashBalance.Equal(dec("500")), "cash delta was %s", applied.CashBalance)
	s.entryRepo.AssertExpectations(s.T())
}

func TestEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}

type FixingServiceTestSuite struct {
	suite.Suite
	fixingRepo   *MockFixingRepository
	accountRepo  *MockAccountRepository
	registryRepo *MockRegistryRepository
	service      portssvc.FixingSvcFacade
}

func (s *FixingServiceTestSuite) SetupTest() {
	s.fixingRepo = new(MockFixingRepository)
	s.accountRepo = new(MockAccountRepository)
	s.registryRepo = new(MockRegistryRepository)
	s.service = services.NewFixingService(s.fixingRepo, s.accountRepo, s.registryRepo)
}

func (s *FixingServiceTestSuite) TestCreatePurchaseFixingSettlesGoldIntoCash() {
	ctx := context.Background()
	party := activeParty("SUP-001")

	s.accountRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	s.accountRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	s.accountRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.accountRepo.On("FindPartyByCodeForUpdate", mock.Anything, mock.Anything, "SUP-001").Return(party, nil).Once()
	s.fixingRepo.On("SaveFixingInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.TransactionFixing")).Return(nil).Once()

	var posted []domain.RegistryEntry
	s.registryRepo.On("SaveEntriesInTx", mock.Anything, mock.Anything, mock.AnythingOfType("[]domain.RegistryEntry")).
		Run(func(args mock.Arguments) {
			posted = args.Get(2).([]domain.RegistryEntry)
		}).Return(nil).Once()

	var applied accounting.BalanceChanges
	s.accountRepo.On("ApplyBalanceChangesInTx", mock.Anything, mock.Anything, "SUP-001", mock.AnythingOfType("accounting.BalanceChanges"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			applied = args.Get(3).(accounting.BalanceChanges)
		}).Return(nil).Once()

	fixing, err := s.service.CreateFixing(ctx, dto.CreateFixingRequest{
		FixingType:    "purchase",
		PartyCode:     "SUP-001",
		PureWeight:    dec("100"),
		GoldBidValue:  dec("234.55"),
		TotalAmount:   dec("23455"),
		VoucherNumber: "FIX-001",
		VoucherDate:   time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
	}, "user-1")
	s.Require().NoError(err)
	s.Equal(domain.FixingPurchase, fixing.FixingType)

	// The owed gold position converts into owed cash at the bid value.
	s.True(applied.GoldBalance.Equal(dec("-100")), "gold delta was %s", applied.GoldBalance)
	s.True(applied.GoldValue.Equal(dec("-23455")), "gold value delta was %s", applied.GoldValue)
	s.True(applied.NetCash().Equal(dec("23455")), "cash delta was %s", applied.NetCash())

	s.Require().Len(posted, 3)
	s.Equal(domain.EntryPurchaseFixing, posted[0].Type)
	s.Nil(posted[0].Party)
	s.Equal(domain.EntryPartyGoldBalance, posted[1].Type)
	s.Require().NotNil(posted[1].Party)
	s.Equal("SUP-001", *posted[1].Party)
	s.True(posted[1].Credit.Equal(dec("100")), "gold leg credit was %s", posted[1].Credit)
	s.Equal(domain.EntryPartyCashBalance, posted[2].Type)
	s.True(posted[2].Debit.Equal(dec("23455")), "cash leg debit was %s", posted[2].Debit)

	s.accountRepo.AssertExpectations(s.T())
	s.registryRepo.AssertExpectations(s.T())
}

func (s *FixingServiceTestSuite) TestCreateRejectsNonPositiveWeight() {
	_, err := s.service.CreateFixing(context.Background(), dto.CreateFixingRequest{
		FixingType:  "sale",
		PartyCode:   "CUST-007",
		PureWeight:  dec("0"),
		TotalAmount: dec("100"),
	}, "user-1")
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.accountRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *FixingServiceTestSuite) TestDeleteReversesFixing() {
	ctx := context.Background()
	fixingID := uuid.NewString()
	stored := &domain.TransactionFixing{
		FixingID:    fixingID,
		FixingType:  domain.FixingPurchase,
		PartyCode:   "SUP-001",
		PureWeight:  dec("100"),
		TotalAmount: dec("23455"),
		IsActive:    true,
	}

	s.fixingRepo.On("FindFixingByID", ctx, fixingID).Return(stored, nil).Once()
	s.accountRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	s.accountRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	s.accountRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.accountRepo.On("FindPartyByCodeForUpdate", mock.Anything, mock.Anything, "SUP-001").Return(activeParty("SUP-001"), nil).Once()
	s.registryRepo.On("DeleteEntriesBySourceIDInTx", mock.Anything, mock.Anything, fixingID).Return(nil).Once()

	var applied accounting.BalanceChanges
	s.accountRepo.On("ApplyBalanceChangesInTx", mock.Anything, mock.Anything, "SUP-001", mock.AnythingOfType("accounting.BalanceChanges"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			applied = args.Get(3).(accounting.BalanceChanges)
		}).Return(nil).Once()
	s.fixingRepo.On("DeleteFixingInTx", mock.Anything, mock.Anything, fixingID).Return(nil).Once()

	err := s.service.DeleteFixing(ctx, fixingID, "user-2")
	s.Require().NoError(err)

	s.True(applied.GoldBalance.Equal(dec("100")), "gold delta was %s", applied.GoldBalance)
	s.True(applied.NetCash().Equal(dec("-23455")), "cash delta was %s", applied.NetCash())
	s.fixingRepo.AssertExpectations(s.T())
}

func TestFixingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FixingServiceTestSuite))
}

type FundTransferServiceTestSuite struct {
	suite.Suite
	transferRepo *MockFundTransferRepository
	accountRepo  *MockAccountRepository
	registryRepo *MockRegistryRepository
	service      portssvc.FundTransferSvcFacade
}

func (s *FundTransferServiceTestSuite) SetupTest() {
	s.transferRepo = new(MockFundTransferRepository)
	s.accountRepo = new(MockAccountRepository)
	s.registryRepo = new(MockRegistryRepository)
	s.service = services.NewFundTransferService(s.transferRepo, s.accountRepo, s.registryRepo)
}

func (s *FundTransferServiceTestSuite) TestCreateGoldTransferMovesBothParties() {
	ctx := context.Background()

	s.accountRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	s.accountRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	s.accountRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()

	var lockOrder []string
	s.accountRepo.On("FindPartyByCodeForUpdate", mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			lockOrder = append(lockOrder, args.String(2))
		}).Return(activeParty("X"), nil).Twice()

	s.transferRepo.On("SaveTransferInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.FundTransfer")).Return(nil).Once()

	var posted []domain.RegistryEntry
	s.registryRepo.On("SaveEntriesInTx", mock.Anything, mock.Anything, mock.AnythingOfType("[]domain.RegistryEntry")).
		Run(func(args mock.Arguments) {
			posted = args.Get(2).([]domain.RegistryEntry)
		}).Return(nil).Once()

	applied := map[string]accounting.BalanceChanges{}
	s.accountRepo.On("ApplyBalanceChangesInTx", mock.Anything, mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("accounting.BalanceChanges"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			applied[args.String(2)] = args.Get(3).(accounting.BalanceChanges)
		}).Return(nil).Twice()

	transfer, err := s.service.CreateTransfer(ctx, dto.CreateFundTransferRequest{
		Asset:         "gold",
		FromParty:     "SUP-002",
		ToParty:       "SUP-001",
		Amount:        dec("50"),
		VoucherNumber: "TRF-001",
		VoucherDate:   time.Now(),
	}, "user-1")
	s.Require().NoError(err)
	s.Equal(domain.TransferGold, transfer.Asset)

	// Locks are taken in code order regardless of transfer direction.
	s.Equal([]string{"SUP-001", "SUP-002"}, lockOrder)

	s.True(applied["SUP-002"].GoldBalance.Equal(dec("-50")), "sender gold delta was %s", applied["SUP-002"].GoldBalance)
	s.True(applied["SUP-001"].GoldBalance.Equal(dec("50")), "receiver gold delta was %s", applied["SUP-001"].GoldBalance)

	s.Require().Len(posted, 2)
	s.Equal(domain.EntryPartyGoldBalance, posted[0].Type)
	s.True(posted[0].Credit.Equal(dec("50")))
	s.True(posted[1].Debit.Equal(dec("50")))

	s.accountRepo.AssertExpectations(s.T())
}

func (s *FundTransferServiceTestSuite) TestCreateRejectsSameParty() {
	_, err := s.service.CreateTransfer(context.Background(), dto.CreateFundTransferRequest{
		Asset:     "cash",
		FromParty: "SUP-001",
		ToParty:   "SUP-001",
		Amount:    dec("10"),
	}, "user-1")
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.accountRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func TestFundTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FundTransferServiceTestSuite))
}
