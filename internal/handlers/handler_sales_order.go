package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gestorerp/gestor_backend/internal/apperrors"
	portssvc "github.com/gestorerp/gestor_backend/internal/core/ports/services"
	"github.com/gestorerp/gestor_backend/internal/dto"
	"github.com/gestorerp/gestor_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// salesOrderHandler handles HTTP requests related to sales orders.
type salesOrderHandler struct {
	orderService portssvc.SalesOrderSvcFacade
}

func newSalesOrderHandler(os portssvc.SalesOrderSvcFacade) *salesOrderHandler {
	return &salesOrderHandler{orderService: os}
}

// registerSalesOrderRoutes registers routes related to sales orders. Creation
// also writes the derived receivable ledger entry.
func registerSalesOrderRoutes(rg *gin.RouterGroup, orderService portssvc.SalesOrderSvcFacade) {
	h := newSalesOrderHandler(orderService)

	orders := rg.Group("/pedidos-venda")
	{
		orders.POST("", h.createSalesOrder)
		orders.GET("", h.listSalesOrders)
		orders.GET("/:id", h.getSalesOrderByID)
		orders.PUT("/:id", h.updateSalesOrder)
		orders.DELETE("/:id", h.deleteSalesOrder)
	}
}

func (h *salesOrderHandler) createSalesOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSalesOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.orderService.CreateSalesOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Referenced entity not found creating sales order", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating sales order", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create sales order in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sales order"})
		}
		return
	}

	logger.Info("Sales order created successfully", slog.Int64("order_id", order.ID), slog.String("number", order.Number))
	c.JSON(http.StatusCreated, dto.ToSalesOrderResponse(order))
}

func (h *salesOrderHandler) getSalesOrderByID(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetSalesOrderByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Sales order not found", slog.Int64("order_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Sales order not found"})
		} else {
			logger.Error("Failed to get sales order from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sales order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesOrderResponse(order))
}

func (h *salesOrderHandler) listSalesOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	orders, err := h.orderService.ListSalesOrders(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list sales orders from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sales orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSalesOrderResponse(orders))
}

func (h *salesOrderHandler) updateSalesOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSalesOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.orderService.UpdateSalesOrder(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Sales order not found for update", slog.Int64("order_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Sales order not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating sales order", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update sales order in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sales order"})
		}
		return
	}

	logger.Info("Sales order updated successfully", slog.Int64("order_id", id))
	c.JSON(http.StatusOK, dto.ToSalesOrderResponse(order))
}

func (h *salesOrderHandler) deleteSalesOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.orderService.DeleteSalesOrder(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Sales order not found for deletion", slog.Int64("order_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Sales order not found"})
		} else {
			logger.Error("Failed to delete sales order in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sales order"})
		}
		return
	}

	logger.Info("Sales order deleted successfully", slog.Int64("order_id", id))
	c.Status(http.StatusNoContent)
}
