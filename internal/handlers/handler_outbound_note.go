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

// outboundNoteHandler handles HTTP requests related to outbound stock notes.
type outboundNoteHandler struct {
	noteService portssvc.OutboundNoteSvcFacade
}

func newOutboundNoteHandler(ns portssvc.OutboundNoteSvcFacade) *outboundNoteHandler {
	return &outboundNoteHandler{noteService: ns}
}

// registerOutboundNoteRoutes registers routes related to outbound notes.
// Creation validates stock for every line before any write; an insufficient
// line rejects the whole note.
func registerOutboundNoteRoutes(rg *gin.RouterGroup, noteService portssvc.OutboundNoteSvcFacade) {
	h := newOutboundNoteHandler(noteService)

	notes := rg.Group("/notas-saida")
	{
		notes.POST("", h.createOutboundNote)
		notes.GET("", h.listOutboundNotes)
		notes.GET("/:id", h.getOutboundNoteByID)
		notes.DELETE("/:id", h.deleteOutboundNote)
	}
}

func (h *outboundNoteHandler) createOutboundNote(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateOutboundNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOutboundNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	note, err := h.noteService.CreateOutboundNote(c.Request.Context(), req)
	if err != nil {
		var stockErr *apperrors.InsufficientStockError
		if errors.As(err, &stockErr) {
			logger.Warn("Insufficient stock creating outbound note", slog.String("error", stockErr.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": stockErr.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Referenced entity not found creating outbound note", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating outbound note", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create outbound note in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create outbound note"})
		}
		return
	}

	logger.Info("Outbound note created successfully", slog.Int64("note_id", note.ID), slog.String("number", note.Number))
	c.JSON(http.StatusCreated, dto.ToOutboundNoteResponse(note))
}

func (h *outboundNoteHandler) getOutboundNoteByID(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	note, err := h.noteService.GetOutboundNoteByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Outbound note not found", slog.Int64("note_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Outbound note not found"})
		} else {
			logger.Error("Failed to get outbound note from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve outbound note"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOutboundNoteResponse(note))
}

func (h *outboundNoteHandler) listOutboundNotes(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	notes, err := h.noteService.ListOutboundNotes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list outbound notes from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list outbound notes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListOutboundNoteResponse(notes))
}

func (h *outboundNoteHandler) deleteOutboundNote(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.noteService.DeleteOutboundNote(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Outbound note not found for deletion", slog.Int64("note_id", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "Outbound note not found"})
		} else {
			logger.Error("Failed to delete outbound note in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete outbound note"})
		}
		return
	}

	logger.Info("Outbound note deleted successfully", slog.Int64("note_id", id))
	c.Status(http.StatusNoContent)
}
