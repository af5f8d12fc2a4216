package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	portsrepo "github.com/AurifyAE/bullionpro-backend/internal/core/ports/repositories"
	portssvc "github.com/AurifyAE/bullionpro-backend/internal/core/ports/services"
	"github.com/AurifyAE/bullionpro-backend/internal/dto"
)

type registryService struct {
	registryRepo portsrepo.RegistryRepositoryFacade
	accountRepo  portsrepo.AccountReader
}

// NewRegistryService creates the statement and export service.
func NewRegistryService(registryRepo portsrepo.RegistryRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.RegistrySvcFacade {
	return &registryService{registryRepo: registryRepo, accountRepo: accountRepo}
}

var _ portssvc.RegistrySvcFacade = (*registryService)(nil)

// ListPartyStatement returns a party's postings in the date range, oldest
// first.
func (s *registryService) ListPartyStatement(ctx context.Context, params dto.StatementParams) ([]domain.RegistryEntry, error) {
	if _, err := s.accountRepo.FindAccountByCode(ctx, params.PartyCode); err != nil {
		return nil, fmt.Errorf("party %s: %w", params.PartyCode, err)
	}
	return s.registryRepo.ListEntriesByParty(ctx, params.PartyCode, params.From, params.To)
}

var statementHeader = []string{
	"Date", "Transaction ID", "Type", "Description", "Reference",
	"Debit", "Credit", "Gross Weight", "Pure Weight", "Gold Bid",
}

// ExportPartyStatementXLSX renders the party statement as a spreadsheet.
func (s *registryService) ExportPartyStatementXLSX(ctx context.Context, params dto.StatementParams) ([]byte, error) {
	entries, err := s.ListPartyStatement(ctx, params)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Statement"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, title := range statementHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(statementHeader), 1)
	if err := f.SetCellStyle(sheet, "A1", endHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, e := range entries {
		row := i + 2
		values := []interface{}{
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.TransactionID,
			string(e.Type),
			e.Description,
			e.Reference,
			e.Debit.InexactFloat64(),
			e.Credit.InexactFloat64(),
			e.GrossWeight.InexactFloat64(),
			e.PureWeight.InexactFloat64(),
			e.GoldBidValue.InexactFloat64(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "E", 22); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}
