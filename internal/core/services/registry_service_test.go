package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/AurifyAE/bullionpro-backend/internal/apperrors"
	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	portssvc "github.com/AurifyAE/bullionpro-backend/internal/core/ports/services"
	"github.com/AurifyAE/bullionpro-backend/internal/core/services"
	"github.com/AurifyAE/bullionpro-backend/internal/dto"
)

type RegistryServiceTestSuite struct {
	suite.Suite
	registryRepo *MockRegistryRepository
	accountRepo  *MockAccountRepository
	service      portssvc.RegistrySvcFacade
}

func (s *RegistryServiceTestSuite) SetupTest() {
	s.registryRepo = new(MockRegistryRepository)
	s.accountRepo = new(MockAccountRepository)
	s.service = services.NewRegistryService(s.registryRepo, s.accountRepo)
}

func statementEntries() []domain.RegistryEntry {
	party := "SUP-001"
	return []domain.RegistryEntry{
		{
			RegistryID:    "r1",
			TransactionID: "TXNID20260829ABC-001",
			Type:          domain.EntryPartyGoldBalance,
			Party:         &party,
			Description:   "Gold received",
			Reference:     "PUR-1001",
			Debit:         dec("100"),
			PureWeight:    dec("100"),
			AuditFields:   domain.AuditFields{CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
		},
		{
			RegistryID:    "r2",
			TransactionID: "TXNID20260829ABC-002",
			Type:          domain.EntryPartyCashBalance,
			Party:         &party,
			Description:   "Making charges",
			Reference:     "PUR-1001",
			Debit:         dec("50"),
			AuditFields:   domain.AuditFields{CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
		},
	}
}

func (s *RegistryServiceTestSuite) TestListPartyStatement() {
	ctx := context.Background()
	params := dto.StatementParams{PartyCode: "SUP-001"}

	s.accountRepo.On("FindAccountByCode", ctx, "SUP-001").Return(activeParty("SUP-001"), nil).Once()
	s.registryRepo.On("ListEntriesByParty", ctx, "SUP-001", time.Time{}, time.Time{}).Return(statementEntries(), nil).Once()

	entries, err := s.service.ListPartyStatement(ctx, params)
	s.Require().NoError(err)
	s.Len(entries, 2)
	s.registryRepo.AssertExpectations(s.T())
}

func (s *RegistryServiceTestSuite) TestListPartyStatementUnknownParty() {
	ctx := context.Background()
	s.accountRepo.On("FindAccountByCode", ctx, "NOPE").
		Return(nil, apperrors.NewNotFoundError("party NOPE not found")).Once()

	_, err := s.service.ListPartyStatement(ctx, dto.StatementParams{PartyCode: "NOPE"})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.registryRepo.AssertNotCalled(s.T(), "ListEntriesByParty", ctx, "NOPE", time.Time{}, time.Time{})
}

func (s *RegistryServiceTestSuite) TestExportPartyStatementXLSX() {
	ctx := context.Background()
	params := dto.StatementParams{PartyCode: "SUP-001"}

	s.accountRepo.On("FindAccountByCode", ctx, "SUP-001").Return(activeParty("SUP-001"), nil).Once()
	s.registryRepo.On("ListEntriesByParty", ctx, "SUP-001", time.Time{}, time.Time{}).Return(statementEntries(), nil).Once()

	data, err := s.service.ExportPartyStatementXLSX(ctx, params)
	s.Require().NoError(err)
	s.Require().NotEmpty(data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	s.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows("Statement")
	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal("Date", rows[0][0])
	s.Equal("Debit", rows[0][5])
	s.Equal("TXNID20260829ABC-001", rows[1][1])
	s.Equal("Gold received", rows[1][3])
	s.Equal("Making charges", rows[2][3])
}

func TestRegistryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryServiceTestSuite))
}
