package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/AurifyAE/bullionpro-backend/internal/core/ports/services"
	"github.com/AurifyAE/bullionpro-backend/internal/dto"
	"github.com/AurifyAE/bullionpro-backend/internal/middleware"
)

// registryHandler serves party statements from the posting registry.
type registryHandler struct {
	registryService portssvc.RegistrySvcFacade
}

// registerRegistryRoutes registers statement routes.
func registerRegistryRoutes(rg *gin.RouterGroup, svc portssvc.RegistrySvcFacade) {
	h := &registryHandler{registryService: svc}

	registry := rg.Group("/registry")
	{
		registry.GET("/statement", h.getStatement)
		registry.GET("/statement/export", h.exportStatement)
	}
}

// getStatement godoc
// @Summary Get a party statement
// @Description Lists a party's ledger postings within a date range, oldest first
// @Tags registry
// @Produce  json
// @Param   partyCode query string true "Party code"
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.RegistryEntryResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Security BearerAuth
// @Router /registry/statement [get]
func (h *registryHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind statement params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	entries, err := h.registryService.ListPartyStatement(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToRegistryEntryResponses(entries))
}

// exportStatement godoc
// @Summary Export a party statement as XLSX
// @Tags registry
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   partyCode query string true "Party code"
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Party not found"
// @Security BearerAuth
// @Router /registry/statement/export [get]
func (h *registryHandler) exportStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind statement params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	data, err := h.registryService.ExportPartyStatementXLSX(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to export statement")
		return
	}

	filename := fmt.Sprintf("statement-%s-%s.xlsx", params.PartyCode, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
