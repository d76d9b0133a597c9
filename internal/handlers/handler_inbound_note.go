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

// inboundNoteHandler handles HTTP requests related to inbound stock notes.
type inboundNoteHandler struct {
	noteService portssvc.InboundNoteSvcFacade
}

func newInboundNoteHandler(ns portssvc.InboundNoteSvcFacade) *inboundNoteHandler {
	return &inboundNoteHandler{noteService: ns}
}

// registerInboundNoteRoutes registers routes related to inbound notes.
// Creation increments stock, rewrites cost prices, appends ENTRADA movements
// and writes the derived payable ledger entry, all atomically.
func registerInboundNoteRoutes(rg *gin.RouterGroup, noteService portssvc.InboundNoteSvcFacade) {
	h := newInboundNoteHandler(noteService)

	notes := rg.Group("/notas-entrada")
	{
		notes.POST("", h.createInboundNote)
		notes.GET("", h.listInboundNotes)
		notes.GET("/:id", h.getInboundNoteByID)
		notes.DELETE("/:id", h.deleteInboundNote)
	}
}

func (h *inboundNoteHandler) createInboundNote(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateInboundNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInboundNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	note, err := h.noteService.CreateInboundNote(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Referenced entity not found creating inbound note", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating inbound note", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create inbound note in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inbound note"})
		}
		return
	}

	logger.Info("Inbound note created successfully", slog.Int64("note_id", note.ID), slog.String("number", note.Number))
	c.JSON(http.StatusCreated, dto.ToInboundNoteResponse(note))
}

func (h *inboundNoteHandler) getInboundNoteByID(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	note, err := h.noteService.GetInboundNoteByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Inbound note not found", slog.Int64("note_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Inbound note not found"})
		} else {
			logger.Error("Failed to get inbound note from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve inbound note"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInboundNoteResponse(note))
}

func (h *inboundNoteHandler) listInboundNotes(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	notes, err := h.noteService.ListInboundNotes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list inbound notes from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list inbound notes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInboundNoteResponse(notes))
}

func (h *inboundNoteHandler) deleteInboundNote(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.noteService.DeleteInboundNote(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Inbound note not found for deletion", slog.Int64("note_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Inbound note not found"})
		} else {
			logger.Error("Failed to delete inbound note in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inbound note"})
		}
		return
	}

	logger.Info("Inbound note deleted successfully", slog.Int64("note_id", id))
	c.Status(http.StatusNoContent)
}
