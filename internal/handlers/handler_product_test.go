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

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, id int64, req dto.UpdateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) DeactivateProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ProductSvcFacade = (*MockProductService)(nil)

// --- Test Suite Setup ---

type ProductHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockProductService *MockProductService
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockProductService = new(MockProductService)

	services := &portssvc.ServiceContainer{Product: suite.mockProductService}
	handlers.RegisterRoutes(suite.router, services)
}

// --- Test Cases ---

func (suite *ProductHandlerTestSuite) TestCreateProduct_Success() {
	body := map[string]any{
		"codigo":      "CB-001",
		"nome":        "Cabo HDMI",
		"preco_venda": "25.00",
	}
	created := &domain.Product{
		ID:        1,
		Code:      "CB-001",
		Name:      "Cabo HDMI",
		Unit:      "UN",
		SalePrice: decimal.RequireFromString("25.00"),
		Active:    true,
	}

	suite.mockProductService.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req dto.CreateProductRequest) bool {
		return req.Code == "CB-001" && req.Name == "Cabo HDMI"
	})).Return(created, nil).Once()

	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/produtos", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.ID)
	suite.Equal("CB-001", resp.Code)
	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_DuplicateCode() {
	suite.mockProductService.On("CreateProduct", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	payload, _ := json.Marshal(map[string]any{"codigo": "CB-001", "nome": "Cabo HDMI"})
	req, _ := http.NewRequest(http.MethodPost, "/api/produtos", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "already exists")
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_MissingRequiredFields() {
	payload, _ := json.Marshal(map[string]any{"nome": "Sem código"})
	req, _ := http.NewRequest(http.MethodPost, "/api/produtos", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProductService.AssertNotCalled(suite.T(), "CreateProduct", mock.Anything, mock.Anything)
}

func (suite *ProductHandlerTestSuite) TestGetProduct_NotFound() {
	suite.mockProductService.On("GetProductByID", mock.Anything, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/produtos/99", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProductHandlerTestSuite) TestGetProduct_InvalidID() {
	req, _ := http.NewRequest(http.MethodGet, "/api/produtos/abc", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProductService.AssertNotCalled(suite.T(), "GetProductByID", mock.Anything, mock.Anything)
}

func (suite *ProductHandlerTestSuite) TestDeactivateProduct_NoContent() {
	suite.mockProductService.On("DeactivateProduct", mock.Anything, int64(5)).
		Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/produtos/5", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())
	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestListProducts_Success() {
	products := []domain.Product{
		{ID: 1, Code: "CB-001", Name: "Cabo HDMI", Active: true},
		{ID: 2, Code: "MS-002", Name: "Mouse USB", Active: true},
	}
	suite.mockProductService.On("ListProducts", mock.Anything).Return(products, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/produtos", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
}

func TestProductHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
