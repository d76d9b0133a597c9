package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/gestorerp/gestor_backend/internal/apperrors"
	"github.com/gestorerp/gestor_backend/internal/core/domain"
	"github.com/gestorerp/gestor_backend/internal/core/services"
	"github.com/gestorerp/gestor_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockLedgerRepository is a mock type for the LedgerRepository interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) SaveLedgerEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindLedgerEntryByID(ctx context.Context, id int64) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListLedgerEntries(ctx context.Context, entryType domain.LedgerType, status domain.LedgerStatus) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, entryType, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) UpdateLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteLedgerEntry(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedgerRepository) SummarizeLedger(ctx context.Context) (*domain.FinancialSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo   *MockLedgerRepository
	mockCustomerRepo *MockCustomerRepository
	mockSupplierRepo *MockSupplierRepository
	service          *services.LedgerService
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockCustomerRepo, suite.mockSupplierRepo)
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCreateLedgerEntry_DefaultsToPending() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Type:        "DESPESA",
		Description: "Aluguel do galpão",
		Amount:      decimal.RequireFromString("1800.00"),
	}

	suite.mockLedgerRepo.On("SaveLedgerEntry", ctx, mock.AnythingOfType("*domain.LedgerEntry")).
		Return(nil).Once()

	entry, err := suite.service.CreateLedgerEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.LedgerExpense, entry.Type)
	suite.Equal(domain.LedgerPending, entry.Status)
	suite.Nil(entry.PaymentDate)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateLedgerEntry_PaidStampsPaymentDate() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Type:        "RECEITA",
		Description: "Venda balcão",
		Amount:      decimal.RequireFromString("50.00"),
		Status:      "PAGO",
	}

	suite.mockLedgerRepo.On("SaveLedgerEntry", ctx, mock.Anything).Return(nil).Once()

	entry, err := suite.service.CreateLedgerEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.LedgerPaid, entry.Status)
	suite.NotNil(entry.PaymentDate)
}

func (suite *LedgerServiceTestSuite) TestCreateLedgerEntry_InvalidType() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Type:        "TRANSFERENCIA",
		Description: "x",
		Amount:      decimal.NewFromInt(1),
	}

	entry, err := suite.service.CreateLedgerEntry(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveLedgerEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateLedgerEntry_ResolvesCounterpartyNames() {
	ctx := context.Background()
	customerID := int64(7)
	req := dto.CreateLedgerEntryRequest{
		Type:        "RECEITA",
		Description: "Serviço avulso",
		Amount:      decimal.RequireFromString("120.00"),
		CustomerID:  &customerID,
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, int64(7)).
		Return(&domain.Customer{ID: 7, Name: "Cliente Final"}, nil).Once()
	suite.mockLedgerRepo.On("SaveLedgerEntry", ctx, mock.Anything).Return(nil).Once()

	entry, err := suite.service.CreateLedgerEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Cliente Final", entry.CustomerName)
}

func (suite *LedgerServiceTestSuite) TestUpdateLedgerEntry_FirstPaidTransitionStampsDate() {
	ctx := context.Background()
	existing := &domain.LedgerEntry{
		ID:     4,
		Type:   domain.LedgerRevenue,
		Status: domain.LedgerPending,
		Amount: decimal.NewFromInt(100),
	}
	paid := "PAGO"

	suite.mockLedgerRepo.On("FindLedgerEntryByID", ctx, int64(4)).Return(existing, nil).Once()
	suite.mockLedgerRepo.On("UpdateLedgerEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.Status == domain.LedgerPaid && e.PaymentDate != nil
	})).Return(nil).Once()

	entry, err := suite.service.UpdateLedgerEntry(ctx, 4, dto.UpdateLedgerEntryRequest{Status: &paid})

	suite.Require().NoError(err)
	suite.NotNil(entry.PaymentDate)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateLedgerEntry_RepaidKeepsOriginalPaymentDate() {
	ctx := context.Background()
	firstPayment := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	existing := &domain.LedgerEntry{
		ID:          4,
		Type:        domain.LedgerRevenue,
		Status:      domain.LedgerPaid,
		Amount:      decimal.NewFromInt(100),
		PaymentDate: &firstPayment,
	}
	paid := "PAGO"

	suite.mockLedgerRepo.On("FindLedgerEntryByID", ctx, int64(4)).Return(existing, nil).Once()
	suite.mockLedgerRepo.On("UpdateLedgerEntry", ctx, mock.Anything).Return(nil).Once()

	entry, err := suite.service.UpdateLedgerEntry(ctx, 4, dto.UpdateLedgerEntryRequest{Status: &paid})

	suite.Require().NoError(err)
	suite.Require().NotNil(entry.PaymentDate)
	suite.True(entry.PaymentDate.Equal(firstPayment))
}

func (suite *LedgerServiceTestSuite) TestUpdateLedgerEntry_InvalidStatus() {
	ctx := context.Background()
	existing := &domain.LedgerEntry{ID: 4, Status: domain.LedgerPending}
	bad := "QUITADO"

	suite.mockLedgerRepo.On("FindLedgerEntryByID", ctx, int64(4)).Return(existing, nil).Once()

	entry, err := suite.service.UpdateLedgerEntry(ctx, 4, dto.UpdateLedgerEntryRequest{Status: &bad})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "UpdateLedgerEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListLedgerEntries_InvalidFilter() {
	ctx := context.Background()

	entries, err := suite.service.ListLedgerEntries(ctx, dto.ListLedgerEntriesRequest{Type: "LUCRO"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entries)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "ListLedgerEntries", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestGetFinancialSummary() {
	ctx := context.Background()
	summary := &domain.FinancialSummary{
		Balance:          decimal.RequireFromString("250.00"),
		ProjectedBalance: decimal.RequireFromString("400.00"),
	}
	suite.mockLedgerRepo.On("SummarizeLedger", ctx).Return(summary, nil).Once()

	got, err := suite.service.GetFinancialSummary(ctx)

	suite.Require().NoError(err)
	suite.True(got.Balance.Equal(decimal.RequireFromString("250.00")))
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
