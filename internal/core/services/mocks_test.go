package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	"github.com/AurifyAE/bullionpro-backend/internal/utils/accounting"
)

// MockMetalTransactionRepository is a mock for MetalTransactionRepositoryWithTx
type MockMetalTransactionRepository struct {
	mock.Mock
}

func (m *MockMetalTransactionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockMetalTransactionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockMetalTransactionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockMetalTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.MetalTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetalTransaction), args.Error(1)
}

func (m *MockMetalTransactionRepository) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.MetalTransaction, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MetalTransaction), args.Error(1)
}

func (m *MockMetalTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.MetalTransaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

func (m *MockMetalTransactionRepository) UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.MetalTransaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

func (m *MockMetalTransactionRepository) DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error {
	args := m.Called(ctx, tx, transactionID)
	return args.Error(0)
}

func (m *MockMetalTransactionRepository) FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.MetalTransaction, error) {
	args := m.Called(ctx, tx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetalTransaction), args.Error(1)
}

func (m *MockMetalTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, from, to domain.TransactionStatus, userID string, now time.Time) error {
	args := m.Called(ctx, transactionID, from, to, userID, now)
	return args.Error(0)
}

// MockAccountRepository is a mock for AccountRepositoryWithTx
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockAccountRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAccountRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindActivePartyByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindPartyByCodeForUpdate(ctx context.Context, tx pgx.Tx, code string) (*domain.Account, error) {
	args := m.Called(ctx, tx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, code string, changes accounting.BalanceChanges, userID string, now time.Time) error {
	args := m.Called(ctx, tx, code, changes, userID, now)
	return args.Error(0)
}

// MockRegistryRepository is a mock for RegistryRepositoryFacade
type MockRegistryRepository struct {
	mock.Mock
}

func (m *MockRegistryRepository) FindEntriesBySourceID(ctx context.Context, sourceID string) ([]domain.RegistryEntry, error) {
	args := m.Called(ctx, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegistryEntry), args.Error(1)
}

func (m *MockRegistryRepository) ListEntriesByParty(ctx context.Context, partyCode string, from, to time.Time) ([]domain.RegistryEntry, error) {
	args := m.Called(ctx, partyCode, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegistryEntry), args.Error(1)
}

func (m *MockRegistryRepository) CountEntriesByReferenceInTx(ctx context.Context, tx pgx.Tx, reference string) (int64, error) {
	args := m.Called(ctx, tx, reference)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRegistryRepository) SaveEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.RegistryEntry) error {
	args := m.Called(ctx, tx, entries)
	return args.Error(0)
}

func (m *MockRegistryRepository) DeleteEntriesBySourceIDInTx(ctx context.Context, tx pgx.Tx, sourceID string) error {
	args := m.Called(ctx, tx, sourceID)
	return args.Error(0)
}

func (m *MockRegistryRepository) DeleteEntriesByReferenceInTx(ctx context.Context, tx pgx.Tx, reference string) error {
	args := m.Called(ctx, tx, reference)
	return args.Error(0)
}

// MockInventoryRepository is a mock for InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindByStockCode(ctx context.Context, stockCode string) (*domain.Inventory, error) {
	args := m.Called(ctx, stockCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) AdjustInTx(ctx context.Context, tx pgx.Tx, stockCode string, pieceDelta int64, weightDelta decimal.Decimal, voucher domain.VoucherContext, actorID string, now time.Time) (*domain.Inventory, error) {
	args := m.Called(ctx, tx, stockCode, pieceDelta, weightDelta, voucher, actorID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) DeleteLogsByVoucherInTx(ctx context.Context, tx pgx.Tx, voucherCode string) error {
	args := m.Called(ctx, tx, voucherCode)
	return args.Error(0)
}

func (m *MockInventoryRepository) ListLogsByVoucher(ctx context.Context, voucherCode string) ([]domain.InventoryLog, error) {
	args := m.Called(ctx, voucherCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryLog), args.Error(1)
}

// MockFixingRepository is a mock for FixingRepository
type MockFixingRepository struct {
	mock.Mock
}

func (m *MockFixingRepository) SaveFixingInTx(ctx context.Context, tx pgx.Tx, fixing domain.TransactionFixing) error {
	args := m.Called(ctx, tx, fixing)
	return args.Error(0)
}

func (m *MockFixingRepository) FindFixingByID(ctx context.Context, fixingID string) (*domain.TransactionFixing, error) {
	args := m.Called(ctx, fixingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionFixing), args.Error(1)
}

func (m *MockFixingRepository) DeleteFixingInTx(ctx context.Context, tx pgx.Tx, fixingID string) error {
	args := m.Called(ctx, tx, fixingID)
	return args.Error(0)
}

// MockEntryRepository is a mock for EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.Entry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) DeleteEntryInTx(ctx context.Context, tx pgx.Tx, entryID string) error {
	args := m.Called(ctx, tx, entryID)
	return args.Error(0)
}

// MockFundTransferRepository is a mock for FundTransferRepository
type MockFundTransferRepository struct {
	mock.Mock
}

func (m *MockFundTransferRepository) SaveTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.FundTransfer) error {
	args := m.Called(ctx, tx, transfer)
	return args.Error(0)
}

func (m *MockFundTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.FundTransfer, error) {
	args := m.Called(ctx, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FundTransfer), args.Error(1)
}

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) DeactivateUser(ctx context.Context, userID string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, userID, updatedBy, now)
	return args.Error(0)
}
