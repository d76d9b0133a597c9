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

// --- Mock OutboundNoteService ---
type MockOutboundNoteService struct {
	mock.Mock
}

func (m *MockOutboundNoteService) CreateOutboundNote(ctx context.Context, req dto.CreateOutboundNoteRequest) (*domain.OutboundNote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutboundNote), args.Error(1)
}

func (m *MockOutboundNoteService) GetOutboundNoteByID(ctx context.Context, id int64) (*domain.OutboundNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutboundNote), args.Error(1)
}

func (m *MockOutboundNoteService) ListOutboundNotes(ctx context.Context) ([]domain.OutboundNote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OutboundNote), args.Error(1)
}

func (m *MockOutboundNoteService) DeleteOutboundNote(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.OutboundNoteSvcFacade = (*MockOutboundNoteService)(nil)

// --- Test Suite Setup ---

type OutboundNoteHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockNoteService *MockOutboundNoteService
}

func (suite *OutboundNoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockNoteService = new(MockOutboundNoteService)

	services := &portssvc.ServiceContainer{OutboundNote: suite.mockNoteService}
	handlers.RegisterRoutes(suite.router, services)
}

func (suite *OutboundNoteHandlerTestSuite) postNote(body map[string]any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/notas-saida", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *OutboundNoteHandlerTestSuite) TestCreateOutboundNote_Success() {
	created := &domain.OutboundNote{
		ID:           1,
		Number:       "NS-001",
		CustomerID:   7,
		CustomerName: "Cliente Final",
		Total:        decimal.RequireFromString("75.00"),
	}
	suite.mockNoteService.On("CreateOutboundNote", mock.Anything, mock.MatchedBy(func(req dto.CreateOutboundNoteRequest) bool {
		return req.Number == "NS-001" && len(req.Items) == 1
	})).Return(created, nil).Once()

	w := suite.postNote(map[string]any{
		"numero":     "NS-001",
		"cliente_id": 7,
		"itens": []map[string]any{
			{"produto_id": 1, "quantidade": "3"},
		},
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.OutboundNoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("NS-001", resp.Number)
	suite.mockNoteService.AssertExpectations(suite.T())
}

func (suite *OutboundNoteHandlerTestSuite) TestCreateOutboundNote_InsufficientStockIs400() {
	stockErr := &apperrors.InsufficientStockError{
		ProductName: "Cabo HDMI",
		Available:   decimal.NewFromInt(2),
		Requested:   decimal.NewFromInt(5),
	}
	suite.mockNoteService.On("CreateOutboundNote", mock.Anything, mock.Anything).
		Return(nil, stockErr).Once()

	w := suite.postNote(map[string]any{
		"numero":     "NS-002",
		"cliente_id": 7,
		"itens": []map[string]any{
			{"produto_id": 1, "quantidade": "5"},
		},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "estoque insuficiente")
	suite.Contains(w.Body.String(), "Cabo HDMI")
}

func (suite *OutboundNoteHandlerTestSuite) TestCreateOutboundNote_UnknownCustomerIs404() {
	suite.mockNoteService.On("CreateOutboundNote", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.postNote(map[string]any{
		"numero":     "NS-003",
		"cliente_id": 99,
		"itens": []map[string]any{
			{"produto_id": 1, "quantidade": "1"},
		},
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *OutboundNoteHandlerTestSuite) TestCreateOutboundNote_EmptyItemsRejected() {
	w := suite.postNote(map[string]any{
		"numero":     "NS-004",
		"cliente_id": 7,
		"itens":      []map[string]any{},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockNoteService.AssertNotCalled(suite.T(), "CreateOutboundNote", mock.Anything, mock.Anything)
}

func (suite *OutboundNoteHandlerTestSuite) TestDeleteOutboundNote_NoContent() {
	suite.mockNoteService.On("DeleteOutboundNote", mock.Anything, int64(3)).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/notas-saida/3", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockNoteService.AssertExpectations(suite.T())
}

func TestOutboundNoteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OutboundNoteHandlerTestSuite))
}
