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

// MockStockRepository is a mock type for the StockRepository interface
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) ListStockPositions(ctx context.Context) ([]domain.StockPosition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockPosition), args.Error(1)
}

func (m *MockStockRepository) ListMovements(ctx context.Context, productID *int64, limit int) ([]domain.StockMovement, error) {
	args := m.Called(ctx, productID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func (m *MockStockRepository) AdjustStock(ctx context.Context, productID int64, target decimal.Decimal, notes string, now time.Time) (*domain.StockMovement, error) {
	args := m.Called(ctx, productID, target, notes, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMovement), args.Error(1)
}

// --- Test Suite Setup ---

type StockServiceTestSuite struct {
	suite.Suite
	mockStockRepo   *MockStockRepository
	mockProductRepo *MockProductRepository
	service         *services.StockService
}

func (suite *StockServiceTestSuite) SetupTest() {
	suite.mockStockRepo = new(MockStockRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewStockService(suite.mockStockRepo, suite.mockProductRepo)
}

// --- Test Cases ---

func (suite *StockServiceTestSuite) TestListMovements_UnfilteredIsCapped() {
	ctx := context.Background()
	suite.mockStockRepo.On("ListMovements", ctx, (*int64)(nil), 100).
		Return([]domain.StockMovement{{ID: 2}, {ID: 1}}, nil).Once()

	movements, err := suite.service.ListMovements(ctx, nil)

	suite.Require().NoError(err)
	suite.Len(movements, 2)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestListMovements_FilteredIsUncapped() {
	ctx := context.Background()
	productID := int64(5)
	suite.mockStockRepo.On("ListMovements", ctx, &productID, 0).
		Return([]domain.StockMovement{{ID: 3, ProductID: 5}}, nil).Once()

	movements, err := suite.service.ListMovements(ctx, &productID)

	suite.Require().NoError(err)
	suite.Require().Len(movements, 1)
	suite.Equal(int64(5), movements[0].ProductID)
}

func (suite *StockServiceTestSuite) TestListMovements_NilBecomesEmptySlice() {
	ctx := context.Background()
	suite.mockStockRepo.On("ListMovements", ctx, (*int64)(nil), 100).
		Return([]domain.StockMovement(nil), nil).Once()

	movements, err := suite.service.ListMovements(ctx, nil)

	suite.Require().NoError(err)
	suite.NotNil(movements)
	suite.Empty(movements)
}

func (suite *StockServiceTestSuite) TestAdjustStock_DefaultNote() {
	ctx := context.Background()
	target := decimal.RequireFromString("12.500")
	req := dto.StockAdjustmentRequest{ProductID: 5, Quantity: target}

	suite.mockProductRepo.On("FindProductByID", ctx, int64(5)).
		Return(&domain.Product{ID: 5, Name: "Cabo HDMI", Active: true}, nil).Once()
	suite.mockStockRepo.On("AdjustStock", ctx, int64(5), target, "Ajuste manual de estoque", mock.AnythingOfType("time.Time")).
		Return(&domain.StockMovement{ID: 9, ProductID: 5, Kind: domain.MovementAdjust}, nil).Once()

	movement, err := suite.service.AdjustStock(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.MovementAdjust, movement.Kind)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestAdjustStock_CallerNoteKept() {
	ctx := context.Background()
	target := decimal.NewFromInt(3)
	req := dto.StockAdjustmentRequest{ProductID: 5, Quantity: target, Notes: "Contagem de inventário"}

	suite.mockProductRepo.On("FindProductByID", ctx, int64(5)).
		Return(&domain.Product{ID: 5, Name: "Cabo HDMI", Active: true}, nil).Once()
	suite.mockStockRepo.On("AdjustStock", ctx, int64(5), target, "Contagem de inventário", mock.AnythingOfType("time.Time")).
		Return(&domain.StockMovement{ID: 10, ProductID: 5, Kind: domain.MovementAdjust}, nil).Once()

	_, err := suite.service.AdjustStock(ctx, req)

	suite.Require().NoError(err)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestAdjustStock_ProductNotFound() {
	ctx := context.Background()
	req := dto.StockAdjustmentRequest{ProductID: 99, Quantity: decimal.NewFromInt(1)}

	suite.mockProductRepo.On("FindProductByID", ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	movement, err := suite.service.AdjustStock(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(movement)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "AdjustStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StockServiceTestSuite))
}
