package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/AurifyAE/bullionpro-backend/internal/apperrors"
	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	portssvc "github.com/AurifyAE/bullionpro-backend/internal/core/ports/services"
	"github.com/AurifyAE/bullionpro-backend/internal/dto"
	"github.com/AurifyAE/bullionpro-backend/internal/handlers"
	"github.com/AurifyAE/bullionpro-backend/internal/middleware"
)

type MockMetalTransactionService struct {
	mock.Mock
}

func (m *MockMetalTransactionService) CreateTransaction(ctx context.Context, req dto.CreateMetalTransactionRequest, actorID string) (*domain.MetalTransaction, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetalTransaction), args.Error(1)
}

func (m *MockMetalTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateMetalTransactionRequest, actorID string) (*domain.MetalTransaction, error) {
	args := m.Called(ctx, transactionID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetalTransaction), args.Error(1)
}

func (m *MockMetalTransactionService) DeleteTransaction(ctx context.Context, transactionID string, actorID string) error {
	args := m.Called(ctx, transactionID, actorID)
	return args.Error(0)
}

func (m *MockMetalTransactionService) CancelTransaction(ctx context.Context, transactionID string, actorID string) error {
	args := m.Called(ctx, transactionID, actorID)
	return args.Error(0)
}

func (m *MockMetalTransactionService) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, actorID string) error {
	args := m.Called(ctx, transactionID, status, actorID)
	return args.Error(0)
}

func (m *MockMetalTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.MetalTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetalTransaction), args.Error(1)
}

func (m *MockMetalTransactionService) ListTransactions(ctx context.Context, limit, offset int) ([]domain.MetalTransaction, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MetalTransaction), args.Error(1)
}

var _ portssvc.MetalTransactionSvcFacade = (*MockMetalTransactionService)(nil)

type MetalTransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockMetalTransactionService
	jwtSecret   string
}

func (suite *MetalTransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *MetalTransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockService = new(MockMetalTransactionService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterMetalTransactionRoutes(v1, suite.mockService)
}

func (suite *MetalTransactionHandlerTestSuite) authedRequest(method, url string, body []byte, userID string) *http.Request {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	return req
}

func sampleCreateBody() []byte {
	body, _ := json.Marshal(dto.CreateMetalTransactionRequest{
		TransactionType: "purchase",
		Unfix:           true,
		PartyCode:       "SUP-001",
		StockItems: []dto.StockItemRequest{{
			StockCode:   "BAR-1KG",
			Pieces:      1,
			GrossWeight: decimal.NewFromInt(100),
			Purity:      decimal.NewFromInt(1),
			PureWeight:  decimal.NewFromInt(100),
		}},
		VoucherNumber: "PUR-1001",
		VoucherDate:   time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
	})
	return body
}

func (suite *MetalTransactionHandlerTestSuite) TestCreateTransaction_Success() {
	actorID := uuid.NewString()
	created := &domain.MetalTransaction{
		TransactionID:   uuid.NewString(),
		TransactionType: domain.Purchase,
		Unfix:           true,
		PartyCode:       "SUP-001",
		VoucherNumber:   "PUR-1001",
		Status:          domain.StatusConfirmed,
		IsActive:        true,
	}

	suite.mockService.On("CreateTransaction",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateMetalTransactionRequest) bool {
			return r.PartyCode == "SUP-001" && r.TransactionType == "purchase"
		}),
		actorID,
	).Return(created, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/metal-transactions", sampleCreateBody(), actorID))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.MetalTransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TransactionID, resp.TransactionID)
	suite.Equal("unfix", resp.Mode)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *MetalTransactionHandlerTestSuite) TestCreateTransaction_MissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/metal-transactions", bytes.NewReader(sampleCreateBody()))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MetalTransactionHandlerTestSuite) TestCreateTransaction_MissingPartyCode() {
	actorID := uuid.NewString()
	body, _ := json.Marshal(map[string]interface{}{
		"transactionType": "purchase",
		"voucherNumber":   "PUR-1001",
	})

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/metal-transactions", body, actorID))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MetalTransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	actorID := uuid.NewString()
	suite.mockService.On("GetTransactionByID", mock.Anything, "absent").
		Return(nil, apperrors.NewNotFoundError("transaction absent not found")).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/metal-transactions/absent", nil, actorID))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *MetalTransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	actorID := uuid.NewString()
	txnID := uuid.NewString()
	suite.mockService.On("DeleteTransaction", mock.Anything, txnID, actorID).Return(nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodDelete, "/api/v1/metal-transactions/"+txnID, nil, actorID))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *MetalTransactionHandlerTestSuite) TestCancelTransaction_Conflict() {
	actorID := uuid.NewString()
	txnID := uuid.NewString()
	suite.mockService.On("CancelTransaction", mock.Anything, txnID, actorID).
		Return(apperrors.NewAppError(409, "status transition not allowed", apperrors.ErrConflict)).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/metal-transactions/"+txnID+"/cancel", nil, actorID))

	suite.Equal(http.StatusConflict, w.Code)
}

func TestMetalTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MetalTransactionHandlerTestSuite))
}
