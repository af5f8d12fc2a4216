package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/AurifyAE/bullionpro-backend/internal/core/ports/services"
	"github.com/AurifyAE/bullionpro-backend/internal/dto"
	"github.com/AurifyAE/bullionpro-backend/internal/middleware"
)

// flowHandler handles fixings, receipt/payment entries, and fund transfers.
type flowHandler struct {
	fixingService   portssvc.FixingSvcFacade
	entryService    portssvc.EntrySvcFacade
	transferService portssvc.FundTransferSvcFacade
}

// registerFlowRoutes registers routes for fixings, entries, and transfers.
func registerFlowRoutes(rg *gin.RouterGroup, fixing portssvc.FixingSvcFacade, entry portssvc.EntrySvcFacade, transfer portssvc.FundTransferSvcFacade) {
	h := &flowHandler{fixingService: fixing, entryService: entry, transferService: transfer}

	fixings := rg.Group("/fixings")
	{
		fixings.POST("", h.createFixing)
		fixings.GET("/:id", h.getFixing)
		fixings.DELETE("/:id", h.deleteFixing)
	}
	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("/:id", h.getEntry)
		entries.DELETE("/:id", h.deleteEntry)
	}
	transfers := rg.Group("/fund-transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("/:id", h.getTransfer)
	}
}

// createFixing godoc
// @Summary Fix a floating gold position
// @Tags fixings
// @Accept  json
// @Produce  json
// @Param   fixing body dto.CreateFixingRequest true "Fixing details"
// @Success 201 {object} domain.TransactionFixing
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /fixings [post]
func (h *flowHandler) createFixing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFixingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFixing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	fixing, err := h.fixingService.CreateFixing(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create fixing")
		return
	}
	c.JSON(http.StatusCreated, fixing)
}

// getFixing godoc
// @Summary Get a fixing by ID
// @Tags fixings
// @Produce  json
// @Param   id path string true "Fixing ID"
// @Success 200 {object} domain.TransactionFixing
// @Failure 404 {object} map[string]string "Fixing not found"
// @Security BearerAuth
// @Router /fixings/{id} [get]
func (h *flowHandler) getFixing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fixing, err := h.fixingService.GetFixingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve fixing")
		return
	}
	c.JSON(http.StatusOK, fixing)
}

// deleteFixing godoc
// @Summary Delete a fixing
// @Description Reverses the fixing's balance effects and removes its postings
// @Tags fixings
// @Param   id path string true "Fixing ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Fixing not found"
// @Security BearerAuth
// @Router /fixings/{id} [delete]
func (h *flowHandler) deleteFixing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.fixingService.DeleteFixing(c.Request.Context(), c.Param("id"), actorID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete fixing")
		return
	}
	c.Status(http.StatusNoContent)
}

// createEntry godoc
// @Summary Record a cash receipt or payment
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} domain.Entry
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /entries [post]
func (h *flowHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	entry, err := h.entryService.CreateEntry(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create entry")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// getEntry godoc
// @Summary Get an entry by ID
// @Tags entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} domain.Entry
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /entries/{id} [get]
func (h *flowHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entry, err := h.entryService.GetEntryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// deleteEntry godoc
// @Summary Delete an entry
// @Description Reverses the entry's cash effect and removes its posting
// @Tags entries
// @Param   id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /entries/{id} [delete]
func (h *flowHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.entryService.DeleteEntry(c.Request.Context(), c.Param("id"), actorID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// createTransfer godoc
// @Summary Transfer cash or gold between parties
// @Tags fund-transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateFundTransferRequest true "Transfer details"
// @Success 201 {object} domain.FundTransfer
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /fund-transfers [post]
func (h *flowHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFundTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create transfer")
		return
	}
	c.JSON(http.StatusCreated, transfer)
}

// getTransfer godoc
// @Summary Get a fund transfer by ID
// @Tags fund-transfers
// @Produce  json
// @Param   id path string true "Transfer ID"
// @Success 200 {object} domain.FundTransfer
// @Failure 404 {object} map[string]string "Transfer not found"
// @Security BearerAuth
// @Router /fund-transfers/{id} [get]
func (h *flowHandler) getTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transfer, err := h.transferService.GetTransferByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve transfer")
		return
	}
	c.JSON(http.StatusOK, transfer)
}
