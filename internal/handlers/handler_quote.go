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

// quoteHandler handles HTTP requests related to quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

func newQuoteHandler(qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{quoteService: qs}
}

// registerQuoteRoutes registers routes related to quotes.
func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(quoteService)

	quotes := rg.Group("/orcamentos")
	{
		quotes.POST("", h.createQuote)
		quotes.GET("", h.listQuotes)
		quotes.GET("/:id", h.getQuoteByID)
		quotes.PUT("/:id", h.updateQuote)
		quotes.DELETE("/:id", h.deleteQuote)
	}
}

func (h *quoteHandler) createQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Referenced entity not found creating quote", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating quote", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create quote in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quote"})
		}
		return
	}

	logger.Info("Quote created successfully", slog.Int64("quote_id", quote.ID), slog.String("number", quote.Number))
	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote))
}

func (h *quoteHandler) getQuoteByID(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	quote, err := h.quoteService.GetQuoteByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Quote not found", slog.Int64("quote_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		} else {
			logger.Error("Failed to get quote from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve quote"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

func (h *quoteHandler) listQuotes(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	quotes, err := h.quoteService.ListQuotes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list quotes from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list quotes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListQuoteResponse(quotes))
}

func (h *quoteHandler) updateQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Quote not found for update", slog.Int64("quote_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating quote", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update quote in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quote"})
		}
		return
	}

	logger.Info("Quote updated successfully", slog.Int64("quote_id", id))
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

func (h *quoteHandler) deleteQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.quoteService.DeleteQuote(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Quote not found for deletion", slog.Int64("quote_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		} else {
			logger.Error("Failed to delete quote in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete quote"})
		}
		return
	}

	logger.Info("Quote deleted successfully", slog.Int64("quote_id", id))
	c.Status(http.StatusNoContent)
}
