package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AurifyAE/bullionpro-backend/internal/apperrors"
	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	portssvc "github.com/AurifyAE/bullionpro-backend/internal/core/ports/services"
	"github.com/AurifyAE/bullionpro-backend/internal/dto"
	"github.com/AurifyAE/bullionpro-backend/internal/middleware"
)

// metalTransactionHandler handles HTTP requests for metal transactions.
type metalTransactionHandler struct {
	txnService portssvc.MetalTransactionSvcFacade
}

func newMetalTransactionHandler(svc portssvc.MetalTransactionSvcFacade) *metalTransactionHandler {
	return &metalTransactionHandler{txnService: svc}
}

// RegisterMetalTransactionRoutes registers routes related to metal transactions.
func RegisterMetalTransactionRoutes(rg *gin.RouterGroup, svc portssvc.MetalTransactionSvcFacade) {
	h := newMetalTransactionHandler(svc)

	txns := rg.Group("/metal-transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/:id", h.getTransaction)
		txns.PUT("/:id", h.updateTransaction)
		txns.DELETE("/:id", h.deleteTransaction)
		txns.POST("/:id/cancel", h.cancelTransaction)
		txns.PATCH("/:id/status", h.updateTransactionStatus)
	}
}

// createTransaction godoc
// @Summary Create a metal transaction
// @Description Creates a purchase/sale/return document and posts its registry entries, balance changes, and inventory movements atomically
// @Tags metal-transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateMetalTransactionRequest true "Transaction details"
// @Success 201 {object} dto.MetalTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Duplicate voucher"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /metal-transactions [post]
func (h *metalTransactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMetalTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.txnService.CreateTransaction(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMetalTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a metal transaction by ID
// @Tags metal-transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.MetalTransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /metal-transactions/{id} [get]
func (h *metalTransactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txn, err := h.txnService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToMetalTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List metal transactions
// @Tags metal-transactions
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.MetalTransactionResponse
// @Security BearerAuth
// @Router /metal-transactions [get]
func (h *metalTransactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	txns, err := h.txnService.ListTransactions(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}
	out := make([]dto.MetalTransactionResponse, len(txns))
	for i := range txns {
		out[i] = dto.ToMetalTransactionResponse(&txns[i])
	}
	c.JSON(http.StatusOK, out)
}

// updateTransaction godoc
// @Summary Update a metal transaction
// @Description Reverses the stored financial effects, applies the allow-listed field updates, and reposts atomically
// @Tags metal-transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateMetalTransactionRequest true "Fields to update"
// @Success 200 {object} dto.MetalTransactionResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /metal-transactions/{id} [put]
func (h *metalTransactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateMetalTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.txnService.UpdateTransaction(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToMetalTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a metal transaction
// @Description Reverses all financial effects of the transaction and removes the document
// @Tags metal-transactions
// @Param   id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /metal-transactions/{id} [delete]
func (h *metalTransactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.txnService.DeleteTransaction(c.Request.Context(), c.Param("id"), actorID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// cancelTransaction godoc
// @Summary Cancel a metal transaction
// @Description Marks the transaction cancelled without touching postings or balances
// @Tags metal-transactions
// @Param   id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Status transition not allowed"
// @Security BearerAuth
// @Router /metal-transactions/{id}/cancel [post]
func (h *metalTransactionHandler) cancelTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.txnService.CancelTransaction(c.Request.Context(), c.Param("id"), actorID); err != nil {
		respondServiceError(c, logger, err, "Failed to cancel transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateTransactionStatus godoc
// @Summary Update transaction status
// @Tags metal-transactions
// @Accept  json
// @Param   id path string true "Transaction ID"
// @Param   status body dto.UpdateTransactionStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Status transition not allowed"
// @Security BearerAuth
// @Router /metal-transactions/{id}/status [patch]
func (h *metalTransactionHandler) updateTransactionStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	status := domain.TransactionStatus(req.Status)
	if err := h.txnService.UpdateTransactionStatus(c.Request.Context(), c.Param("id"), status, actorID); err != nil {
		respondServiceError(c, logger, err, "Failed to update transaction status")
		return
	}
	c.Status(http.StatusNoContent)
}

// respondServiceError maps service errors onto HTTP status codes.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
