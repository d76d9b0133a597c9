package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gestorerp/gestor_backend/internal/apperrors"
	portssvc "github.com/gestorerp/gestor_backend/internal/core/ports/services"
	"github.com/gestorerp/gestor_backend/internal/dto"
	"github.com/gestorerp/gestor_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// stockHandler handles HTTP requests related to stock reports and adjustments.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

func newStockHandler(ss portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{stockService: ss}
}

// registerStockRoutes registers the stock position, movement log and manual
// adjustment routes.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := newStockHandler(stockService)

	stock := rg.Group("/estoque")
	{
		stock.GET("", h.getStockPositions)
		stock.GET("/movimentos", h.listMovements)
		stock.POST("/ajuste", h.adjustStock)
	}
}

func (h *stockHandler) getStockPositions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	positions, err := h.stockService.GetStockPositions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get stock positions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stock positions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStockPositionResponse(positions))
}

func (h *stockHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var productID *int64
	if raw := c.Query("produto_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid produto_id format"})
			return
		}
		productID = &id
	}

	movements, err := h.stockService.ListMovements(c.Request.Context(), productID)
	if err != nil {
		logger.Error("Failed to list stock movements from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stock movements"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStockMovementResponse(movements))
}

func (h *stockHandler) adjustStock(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.StockAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdjustStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	movement, err := h.stockService.AdjustStock(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Product not found for stock adjustment", slog.Int64("product_id", req.ProductID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error adjusting stock", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to adjust stock in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust stock"})
		}
		return
	}

	logger.Info("Stock adjusted successfully",
		slog.Int64("product_id", req.ProductID),
		slog.String("stock_after", movement.StockAfter.String()),
	)
	c.JSON(http.StatusCreated, dto.ToStockMovementResponse(movement))
}
