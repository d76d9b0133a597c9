package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gestorerp/gestor_backend/internal/apperrors"
	"github.com/gestorerp/gestor_backend/internal/core/domain"
	portssvc "github.com/gestorerp/gestor_backend/internal/core/ports/services"
	"github.com/gestorerp/gestor_backend/internal/dto"
	"github.com/gestorerp/gestor_backend/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateLedgerEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) GetLedgerEntryByID(ctx context.Context, id int64) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) ListLedgerEntries(ctx context.Context, req dto.ListLedgerEntriesRequest) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) UpdateLedgerEntry(ctx context.Context, id int64, req dto.UpdateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) DeleteLedgerEntry(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedgerService) GetFinancialSummary(ctx context.Context) (*domain.FinancialSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite Setup ---

type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockLedgerService = new(MockLedgerService)

	services := &portssvc.ServiceContainer{Ledger: suite.mockLedgerService}
	handlers.RegisterRoutes(suite.router, services)
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestCreateLedgerEntry_Success() {
	created := &domain.LedgerEntry{
		ID:          1,
		Type:        domain.LedgerExpense,
		Description: "Aluguel do galpão",
		Amount:      decimal.RequireFromString("1800.00"),
		Status:      domain.LedgerPending,
	}
	suite.mockLedgerService.On("CreateLedgerEntry", mock.Anything, mock.MatchedBy(func(req dto.CreateLedgerEntryRequest) bool {
		return req.Type == "DESPESA" && req.Description == "Aluguel do galpão"
	})).Return(created, nil).Once()

	payload, _ := json.Marshal(map[string]any{
		"tipo":      "DESPESA",
		"descricao": "Aluguel do galpão",
		"valor":     "1800.00",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/financeiro/lancamentos", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.LedgerEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("DESPESA", resp.Type)
	suite.Equal("PENDENTE", resp.Status)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestCreateLedgerEntry_UnknownTypeFailsBinding() {
	payload, _ := json.Marshal(map[string]any{
		"tipo":      "TRANSFERENCIA",
		"descricao": "x",
		"valor":     "1.00",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/financeiro/lancamentos", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CreateLedgerEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestListLedgerEntries_FiltersForwarded() {
	suite.mockLedgerService.On("ListLedgerEntries", mock.Anything, mock.MatchedBy(func(req dto.ListLedgerEntriesRequest) bool {
		return req.Type == "RECEITA" && req.Status == "PENDENTE"
	})).Return([]domain.LedgerEntry{{ID: 1, Type: domain.LedgerRevenue, Status: domain.LedgerPending}}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/financeiro/lancamentos?tipo=RECEITA&status=PENDENTE", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestListLedgerEntries_InvalidFilterFailsBinding() {
	req, _ := http.NewRequest(http.MethodGet, "/api/financeiro/lancamentos?tipo=LUCRO", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "ListLedgerEntries", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestGetFinancialSummary() {
	summary := &domain.FinancialSummary{
		Revenues: domain.SummaryBucket{
			Pending: decimal.RequireFromString("150.00"),
			Paid:    decimal.RequireFromString("250.00"),
			Total:   decimal.RequireFromString("400.00"),
		},
		Expenses: domain.SummaryBucket{
			Pending: decimal.RequireFromString("0.00"),
			Paid:    decimal.RequireFromString("0.00"),
			Total:   decimal.RequireFromString("0.00"),
		},
		Balance:          decimal.RequireFromString("250.00"),
		ProjectedBalance: decimal.RequireFromString("400.00"),
	}
	suite.mockLedgerService.On("GetFinancialSummary", mock.Anything).Return(summary, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/financeiro/resumo", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FinancialSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.RequireFromString("250.00")))
	suite.True(resp.ProjectedBalance.Equal(decimal.RequireFromString("400.00")))
}

func (suite *LedgerHandlerTestSuite) TestDeleteLedgerEntry_NotFound() {
	suite.mockLedgerService.On("DeleteLedgerEntry", mock.Anything, int64(42)).
		Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/financeiro/lancamentos/42", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
