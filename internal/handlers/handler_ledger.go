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

// ledgerHandler handles HTTP requests related to the financial ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers the ledger entry CRUD and the financial
// summary routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/financeiro")
	{
		ledger.POST("/lancamentos", h.createLedgerEntry)
		ledger.GET("/lancamentos", h.listLedgerEntries)
		ledger.GET("/lancamentos/:id", h.getLedgerEntryByID)
		ledger.PUT("/lancamentos/:id", h.updateLedgerEntry)
		ledger.DELETE("/lancamentos/:id", h.deleteLedgerEntry)
		ledger.GET("/resumo", h.getFinancialSummary)
	}
}

func (h *ledgerHandler) createLedgerEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLedgerEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.ledgerService.CreateLedgerEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Referenced entity not found creating ledger entry", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating ledger entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create ledger entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ledger entry"})
		}
		return
	}

	logger.Info("Ledger entry created successfully", slog.Int64("entry_id", entry.ID))
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

func (h *ledgerHandler) getLedgerEntryByID(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	entry, err := h.ledgerService.GetLedgerEntryByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Ledger entry not found", slog.Int64("entry_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Ledger entry not found"})
		} else {
			logger.Error("Failed to get ledger entry from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ledger entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

func (h *ledgerHandler) listLedgerEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.ListLedgerEntriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid query filters for ListLedgerEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query filters: " + err.Error()})
		return
	}

	entries, err := h.ledgerService.ListLedgerEntries(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to list ledger entries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ledger entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLedgerEntryResponse(entries))
}

func (h *ledgerHandler) updateLedgerEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateLedgerEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.ledgerService.UpdateLedgerEntry(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Ledger entry not found for update", slog.Int64("entry_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Ledger entry not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating ledger entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update ledger entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ledger entry"})
		}
		return
	}

	logger.Info("Ledger entry updated successfully", slog.Int64("entry_id", id))
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

func (h *ledgerHandler) deleteLedgerEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteLedgerEntry(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Ledger entry not found for deletion", slog.Int64("entry_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Ledger entry not found"})
		} else {
			logger.Error("Failed to delete ledger entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ledger entry"})
		}
		return
	}

	logger.Info("Ledger entry deleted successfully", slog.Int64("entry_id", id))
	c.Status(http.StatusNoContent)
}

func (h *ledgerHandler) getFinancialSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	summary, err := h.ledgerService.GetFinancialSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get financial summary from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve financial summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(summary))
}
