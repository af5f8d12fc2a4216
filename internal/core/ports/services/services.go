package services

import (
	"context"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	"github.com/AurifyAE/bullionpro-backend/internal/dto"
)

// MetalTransactionSvcFacade is the lifecycle coordinator surface for metal
// purchase/sale/return transactions.
type MetalTransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateMetalTransactionRequest, actorID string) (*domain.MetalTransaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateMetalTransactionRequest, actorID string) (*domain.MetalTransaction, error)
	DeleteTransaction(ctx context.Context, transactionID string, actorID string) error
	// CancelTransaction is a status transition only; it never reverses
	// postings or balances. DeleteTransaction does the full financial undo.
	CancelTransaction(ctx context.Context, transactionID string, actorID string) error
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, actorID string) error
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.MetalTransaction, error)
	ListTransactions(ctx context.Context, limit, offset int) ([]domain.MetalTransaction, error)
}

// AccountSvcFacade manages party accounts and opening balances.
type AccountSvcFacade interface {
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, actorID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetPartyByCode(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)
	DeactivateAccount(ctx context.Context, accountID string, actorID string) error
	SetOpeningBalance(ctx context.Context, partyCode string, req dto.OpeningBalanceRequest, actorID string) error
}

// FixingSvcFacade locks and unwinds floating gold positions.
type FixingSvcFacade interface {
	CreateFixing(ctx context.Context, req dto.CreateFixingRequest, actorID string) (*domain.TransactionFixing, error)
	DeleteFixing(ctx context.Context, fixingID string, actorID string) error
	GetFixingByID(ctx context.Context, fixingID string) (*domain.TransactionFixing, error)
}

// EntrySvcFacade records standalone cash receipts and payments.
type EntrySvcFacade interface {
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, actorID string) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, entryID string, actorID string) error
	GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)
}

// FundTransferSvcFacade moves balances between two parties.
type FundTransferSvcFacade interface {
	CreateTransfer(ctx context.Context, req dto.CreateFundTransferRequest, actorID string) (*domain.FundTransfer, error)
	GetTransferByID(ctx context.Context, transferID string) (*domain.FundTransfer, error)
}

// RegistrySvcFacade exposes the ledger for statements and exports.
type RegistrySvcFacade interface {
	ListPartyStatement(ctx context.Context, params dto.StatementParams) ([]domain.RegistryEntry, error)
	// ExportPartyStatementXLSX renders the statement as a spreadsheet and
	// returns the file contents.
	ExportPartyStatementXLSX(ctx context.Context, params dto.StatementParams) ([]byte, error)
}

// UserSvcFacade manages operator accounts.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, actorID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	DeactivateUser(ctx context.Context, userID string, actorID string) error
}

// AuthSvcFacade authenticates operators and issues tokens.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
