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

// MockOutboundNoteRepository is a mock type for the OutboundNoteRepository interface
type MockOutboundNoteRepository struct {
	mock.Mock
}

func (m *MockOutboundNoteRepository) SaveOutboundNote(ctx context.Context, note *domain.OutboundNote) ([]domain.StockMovement, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func (m *MockOutboundNoteRepository) FindOutboundNoteByID(ctx context.Context, id int64) (*domain.OutboundNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutboundNote), args.Error(1)
}

func (m *MockOutboundNoteRepository) ListOutboundNotes(ctx context.Context) ([]domain.OutboundNote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OutboundNote), args.Error(1)
}

func (m *MockOutboundNoteRepository) DeleteOutboundNote(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Test Suite Setup ---

type OutboundNoteServiceTestSuite struct {
	suite.Suite
	mockNoteRepo     *MockOutboundNoteRepository
	mockCustomerRepo *MockCustomerRepository
	mockProductRepo  *MockProductRepository
	service          *services.OutboundNoteService
}

func (suite *OutboundNoteServiceTestSuite) SetupTest() {
	suite.mockNoteRepo = new(MockOutboundNoteRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewOutboundNoteService(suite.mockNoteRepo, suite.mockCustomerRepo, suite.mockProductRepo)
}

func (suite *OutboundNoteServiceTestSuite) stockedProduct(id int64, name, stock string) *domain.Product {
	return &domain.Product{
		ID:           id,
		Name:         name,
		SalePrice:    decimal.RequireFromString("25.00"),
		CurrentStock: decimal.RequireFromString(stock),
		Active:       true,
	}
}

// --- Test Cases ---

func (suite *OutboundNoteServiceTestSuite) TestCreateOutboundNote_Success() {
	ctx := context.Background()
	orderID := int64(11)
	req := dto.CreateOutboundNoteRequest{
		Number:       "NS-001",
		CustomerID:   7,
		SalesOrderID: &orderID,
		Items: []dto.DocumentItemRequest{
			{ProductID: 1, Quantity: decimal.NewFromInt(3)},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, int64(7)).
		Return(&domain.Customer{ID: 7, Name: "Cliente Final"}, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, int64(1)).
		Return(suite.stockedProduct(1, "Cabo HDMI", "10"), nil).Once()
	suite.mockNoteRepo.On("SaveOutboundNote", ctx, mock.AnythingOfType("*domain.OutboundNote")).
		Return([]domain.StockMovement{{ProductID: 1, Kind: domain.MovementOut}}, nil).Once()

	note, err := suite.service.CreateOutboundNote(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(note)
	suite.Equal("NS-001", note.Number)
	suite.Require().NotNil(note.SalesOrderID)
	suite.Equal(int64(11), *note.SalesOrderID)
	suite.True(note.Total.Equal(decimal.RequireFromString("75.00")))
	suite.mockNoteRepo.AssertExpectations(suite.T())
}

func (suite *OutboundNoteServiceTestSuite) TestCreateOutboundNote_InsufficientStockRejectsWholeNote() {
	ctx := context.Background()
	req := dto.CreateOutboundNoteRequest{
		Number:     "NS-002",
		CustomerID: 7,
		Items: []dto.DocumentItemRequest{
			{ProductID: 1, Quantity: decimal.NewFromInt(2)},
			{ProductID: 2, Quantity: decimal.NewFromInt(5)},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, int64(7)).
		Return(&domain.Customer{ID: 7, Name: "Cliente Final"}, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, int64(1)).
		Return(suite.stockedProduct(1, "Cabo HDMI", "10"), nil).Once()
	// Second line overdraws: 5 requested, 4 available.
	suite.mockProductRepo.On("FindProductByID", ctx, int64(2)).
		Return(suite.stockedProduct(2, "Mouse USB", "4"), nil).Once()

	note, err := suite.service.CreateOutboundNote(ctx, req)

	suite.Require().Error(err)
	var stockErr *apperrors.InsufficientStockError
	suite.Require().ErrorAs(err, &stockErr)
	suite.Equal("Mouse USB", stockErr.ProductName)
	suite.True(stockErr.Available.Equal(decimal.NewFromInt(4)))
	suite.True(stockErr.Requested.Equal(decimal.NewFromInt(5)))
	suite.Nil(note)
	// Nothing may be written when any line fails validation.
	suite.mockNoteRepo.AssertNotCalled(suite.T(), "SaveOutboundNote", mock.Anything, mock.Anything)
}

func (suite *OutboundNoteServiceTestSuite) TestCreateOutboundNote_ExactStockAllowed() {
	ctx := context.Background()
	req := dto.CreateOutboundNoteRequest{
		Number:     "NS-003",
		CustomerID: 7,
		Items: []dto.DocumentItemRequest{
			{ProductID: 1, Quantity: decimal.NewFromInt(4)},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, int64(7)).
		Return(&domain.Customer{ID: 7, Name: "Cliente Final"}, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, int64(1)).
		Return(suite.stockedProduct(1, "Cabo HDMI", "4"), nil).Once()
	suite.mockNoteRepo.On("SaveOutboundNote", ctx, mock.Anything).
		Return([]domain.StockMovement{}, nil).Once()

	note, err := suite.service.CreateOutboundNote(ctx, req)

	suite.Require().NoError(err)
	suite.NotNil(note)
	suite.mockNoteRepo.AssertExpectations(suite.T())
}

func (suite *OutboundNoteServiceTestSuite) TestCreateOutboundNote_RepoStockErrorPropagates() {
	ctx := context.Background()
	req := dto.CreateOutboundNoteRequest{
		Number:     "NS-004",
		CustomerID: 7,
		Items: []dto.DocumentItemRequest{
			{ProductID: 1, Quantity: decimal.NewFromInt(2)},
		},
	}

	// The repository re-checks under lock; a concurrent note can still win the
	// race after service-level validation passed.
	raceErr := &apperrors.InsufficientStockError{
		ProductName: "Cabo HDMI",
		Available:   decimal.NewFromInt(1),
		Requested:   decimal.NewFromInt(2),
	}
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, int64(7)).
		Return(&domain.Customer{ID: 7, Name: "Cliente Final"}, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, int64(1)).
		Return(suite.stockedProduct(1, "Cabo HDMI", "10"), nil).Once()
	suite.mockNoteRepo.On("SaveOutboundNote", ctx, mock.Anything).Return(nil, raceErr).Once()

	note, err := suite.service.CreateOutboundNote(ctx, req)

	suite.Require().Error(err)
	var stockErr *apperrors.InsufficientStockError
	suite.ErrorAs(err, &stockErr)
	suite.Nil(note)
}

func TestOutboundNoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OutboundNoteServiceTestSuite))
}
