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

// supplierHandler handles HTTP requests related to suppliers.
type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

func newSupplierHandler(ss portssvc.SupplierSvcFacade) *supplierHandler {
	return &supplierHandler{supplierService: ss}
}

// registerSupplierRoutes registers routes related to suppliers.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierSvcFacade) {
	h := newSupplierHandler(supplierService)

	suppliers := rg.Group("/fornecedores")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:id", h.getSupplierByID)
		suppliers.PUT("/:id", h.updateSupplier)
		suppliers.DELETE("/:id", h.deactivateSupplier)
	}
}

func (h *supplierHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSupplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate supplier", slog.String("cnpj", req.Cnpj))
			c.JSON(http.StatusConflict, gin.H{"error": "Supplier with this CNPJ already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating supplier", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create supplier in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supplier"})
		}
		return
	}

	logger.Info("Supplier created successfully", slog.Int64("supplier_id", supplier.ID))
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

func (h *supplierHandler) getSupplierByID(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Supplier not found", slog.Int64("supplier_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		} else {
			logger.Error("Failed to get supplier from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve supplier"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

func (h *supplierHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list suppliers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list suppliers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSupplierResponse(suppliers))
}

func (h *supplierHandler) updateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSupplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Supplier not found for update", slog.Int64("supplier_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating supplier", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update supplier in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier"})
		}
		return
	}

	logger.Info("Supplier updated successfully", slog.Int64("supplier_id", id))
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

func (h *supplierHandler) deactivateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.supplierService.DeactivateSupplier(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Supplier not found for deactivation", slog.Int64("supplier_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		} else {
			logger.Error("Failed to deactivate supplier in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate supplier"})
		}
		return
	}

	logger.Info("Supplier deactivated successfully", slog.Int64("supplier_id", id))
	c.Status(http.StatusNoContent)
}
