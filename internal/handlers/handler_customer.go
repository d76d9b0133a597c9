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

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

func newCustomerHandler(cs portssvc.CustomerSvcFacade) *customerHandler {
	return &customerHandler{customerService: cs}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := newCustomerHandler(customerService)

	customers := rg.Group("/clientes")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:id", h.getCustomerByID)
		customers.PUT("/:id", h.updateCustomer)
		customers.DELETE("/:id", h.deactivateCustomer)
	}
}

func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate customer", slog.String("cpf_cnpj", req.CpfCnpj))
			c.JSON(http.StatusConflict, gin.H{"error": "Customer with this CPF/CNPJ already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating customer", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create customer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		}
		return
	}

	logger.Info("Customer created successfully", slog.Int64("customer_id", customer.ID))
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

func (h *customerHandler) getCustomerByID(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Customer not found", slog.Int64("customer_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to get customer from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve customer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list customers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list customers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCustomerResponse(customers))
}

func (h *customerHandler) updateCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Customer not found for update", slog.Int64("customer_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating customer", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update customer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		}
		return
	}

	logger.Info("Customer updated successfully", slog.Int64("customer_id", id))
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

func (h *customerHandler) deactivateCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.customerService.DeactivateCustomer(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Customer not found for deactivation", slog.Int64("customer_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to deactivate customer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate customer"})
		}
		return
	}

	logger.Info("Customer deactivated successfully", slog.Int64("customer_id", id))
	c.Status(http.StatusNoContent)
}
