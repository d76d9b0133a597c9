package services_test

import (
	"context"
	"testing"

	"github.com/gestorerp/gestor_backend/internal/apperrors"
	"github.com/gestorerp/gestor_backend/internal/core/domain"
	"github.com/gestorerp/gestor_backend/internal/core/services"
	"github.com/gestorerp/gestor_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockQuoteRepository is a mock type for the QuoteRepository interface
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) SaveQuote(ctx context.Context, quote *domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) FindQuoteByID(ctx context.Context, id int64) (*domain.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) UpdateQuote(ctx context.Context, quote domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) DeleteQuote(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Test Suite Setup ---

type QuoteServiceTestSuite struct {
	suite.Suite
	mockQuoteRepo    *MockQuoteRepository
	mockCustomerRepo *MockCustomerRepository
	mockProductRepo  *MockProductRepository
	service          *services.QuoteService
}

func (suite *QuoteServiceTestSuite) SetupTest() {
	suite.mockQuoteRepo = new(MockQuoteRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewQuoteService(suite.mockQuoteRepo, suite.mockCustomerRepo, suite.mockProductRepo)
}

// --- Test Cases ---

func (suite *QuoteServiceTestSuite) TestCreateQuote_DefaultsToPending() {
	ctx := context.Background()
	req := dto.CreateQuoteRequest{
		Number:     "ORC-001",
		CustomerID: 7,
		Items: []dto.DocumentItemRequest{
			{ProductID: 1, Quantity: decimal.NewFromInt(2)},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, int64(7)).
		Return(&domain.Customer{ID: 7, Name: "Cliente Final"}, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, int64(1)).
		Return(&domain.Product{ID: 1, Name: "Cabo HDMI", SalePrice: decimal.RequireFromString("25.00"), Active: true}, nil).Once()
	suite.mockQuoteRepo.On("SaveQuote", ctx, mock.AnythingOfType("*domain.Quote")).
		Return(nil).Once()

	quote, err := suite.service.CreateQuote(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.QuotePending, quote.Status)
	suite.Equal("Cliente Final", quote.CustomerName)
	suite.True(quote.Total.Equal(decimal.RequireFromString("50.00")))
	suite.mockQuoteRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_InvalidStatus() {
	ctx := context.Background()
	req := dto.CreateQuoteRequest{
		Number:     "ORC-002",
		CustomerID: 7,
		Status:     "FATURADO",
		Items: []dto.DocumentItemRequest{
			{ProductID: 1, Quantity: decimal.NewFromInt(1)},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, int64(7)).
		Return(&domain.Customer{ID: 7, Name: "Cliente Final"}, nil).Once()

	quote, err := suite.service.CreateQuote(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(quote)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "SaveQuote", mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestUpdateQuote_StatusTransition() {
	ctx := context.Background()
	existing := &domain.Quote{
		ID:     3,
		Number: "ORC-001",
		Status: domain.QuotePending,
		Notes:  "entrega combinada",
	}
	approved := "APROVADO"

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, int64(3)).Return(existing, nil).Once()
	suite.mockQuoteRepo.On("UpdateQuote", ctx, mock.MatchedBy(func(q domain.Quote) bool {
		return q.Status == domain.QuoteApproved && q.Notes == "entrega combinada"
	})).Return(nil).Once()

	quote, err := suite.service.UpdateQuote(ctx, 3, dto.UpdateQuoteRequest{Status: &approved})

	suite.Require().NoError(err)
	suite.Equal(domain.QuoteApproved, quote.Status)
	suite.mockQuoteRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestDeleteQuote_NotFound() {
	ctx := context.Background()
	suite.mockQuoteRepo.On("FindQuoteByID", ctx, int64(42)).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteQuote(ctx, 42)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "DeleteQuote", mock.Anything, mock.Anything)
}

func TestQuoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteServiceTestSuite))
}
