package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_closing_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_closing_app/internal/dto"
	"github.com/SscSPs/ledger_closing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	auditService  portssvc.AuditSvc
}

func newJournalHandler(ls portssvc.LedgerSvcFacade, as portssvc.AuditSvc) *journalHandler {
	return &journalHandler{
		ledgerService: ls,
		auditService:  as,
	}
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, auditService portssvc.AuditSvc) {
	h := newJournalHandler(ledgerService, auditService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("/:entryID", h.getEntry)
		entries.POST("/:entryID/approve", h.approveEntry)
		entries.POST("/:entryID/cancel", h.cancelEntry)
		entries.DELETE("/:entryID", h.deleteEntry)
		entries.GET("/:entryID/audit", h.listEntryAudit)
	}

	rg.GET("/audit-logs", h.listRecentAudit)
}

// createEntry godoc
// @Summary Post a journal entry
// @Description Validates the lines and the balance, then stores the entry as a draft
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry with lines"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input or unusable account"
// @Failure 409 {object} map[string]string "Duplicate entry number or closed fiscal year"
// @Failure 422 {object} map[string]string "Entry does not balance or a line is invalid"
// @Failure 500 {object} map[string]string "Failed to post journal entry"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	var req dto.CreateJournalEntryRequest
	if !bindJSON(c, &req, false) {
		return
	}
	actorID, ok := resolveActor(c, req.ActorID)
	if !ok {
		return
	}

	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err, "Failed to post journal entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry and its lines
// @Tags journal-entries
// @Produce  json
// @Param   entryID path int true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal entry"
// @Security BearerAuth
// @Router /journal-entries/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	entryID, ok := int64Param(c, "entryID")
	if !ok {
		return
	}

	entry, err := h.ledgerService.GetEntry(c.Request.Context(), entryID)
	if err != nil {
		respondError(c, err, "Failed to retrieve journal entry")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Journal entry retrieved", slog.Int64("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// approveEntry godoc
// @Summary Approve a draft journal entry
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entryID path int true "Journal entry ID"
// @Param   actor body dto.ActorRequest false "Acting user when no bearer token is sent"
// @Success 200 {object} dto.EntryStatusChangeResponse
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 409 {object} map[string]string "Fiscal year is closed"
// @Failure 422 {object} map[string]string "Entry is not a draft"
// @Security BearerAuth
// @Router /journal-entries/{entryID}/approve [post]
func (h *journalHandler) approveEntry(c *gin.Context) {
	h.changeStatus(c, "Failed to approve journal entry", h.ledgerService.ApproveEntry)
}

// cancelEntry godoc
// @Summary Cancel a draft or approved journal entry
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entryID path int true "Journal entry ID"
// @Param   actor body dto.ActorRequest false "Acting user when no bearer token is sent"
// @Success 200 {object} dto.EntryStatusChangeResponse
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 409 {object} map[string]string "Fiscal year is closed"
// @Failure 422 {object} map[string]string "Entry cannot be cancelled"
// @Security BearerAuth
// @Router /journal-entries/{entryID}/cancel [post]
func (h *journalHandler) cancelEntry(c *gin.Context) {
	h.changeStatus(c, "Failed to cancel journal entry", h.ledgerService.CancelEntry)
}

// deleteEntry godoc
// @Summary Delete a draft or cancelled journal entry
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entryID path int true "Journal entry ID"
// @Param   actor body dto.ActorRequest false "Acting user when no bearer token is sent"
// @Success 200 {object} dto.EntryStatusChangeResponse
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 409 {object} map[string]string "Fiscal year is closed"
// @Failure 422 {object} map[string]string "Entry cannot be deleted"
// @Security BearerAuth
// @Router /journal-entries/{entryID} [delete]
func (h *journalHandler) deleteEntry(c *gin.Context) {
	h.changeStatus(c, "Failed to delete journal entry", h.ledgerService.DeleteEntry)
}

type statusChangeFunc func(ctx context.Context, entryID, actorID int64) (*domain.EntryStatusChange, error)

func (h *journalHandler) changeStatus(c *gin.Context, failureMsg string, apply statusChangeFunc) {
	entryID, ok := int64Param(c, "entryID")
	if !ok {
		return
	}
	var req dto.ActorRequest
	if !bindJSON(c, &req, true) {
		return
	}
	actorID, ok := resolveActor(c, req.ActorID)
	if !ok {
		return
	}

	change, err := apply(c.Request.Context(), entryID, actorID)
	if err != nil {
		respondError(c, err, failureMsg)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryStatusChangeResponse(change))
}

// listEntryAudit godoc
// @Summary Audit trail of a journal entry
// @Tags audit
// @Produce  json
// @Param   entryID path int true "Journal entry ID"
// @Param   limit query int false "Maximum records (default 50, max 500)"
// @Success 200 {array} dto.AuditLogResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list audit records"
// @Security BearerAuth
// @Router /journal-entries/{entryID}/audit [get]
func (h *journalHandler) listEntryAudit(c *gin.Context) {
	entryID, ok := int64Param(c, "entryID")
	if !ok {
		return
	}
	var params dto.ListAuditParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	records, err := h.auditService.ListForEntry(c.Request.Context(), entryID, params.Limit)
	if err != nil {
		respondError(c, err, "Failed to list audit records")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditLogResponses(records))
}

// listRecentAudit godoc
// @Summary Most recent audit records
// @Tags audit
// @Produce  json
// @Param   limit query int false "Maximum records (default 50, max 500)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListAuditLogsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or token"
// @Failure 500 {object} map[string]string "Failed to list audit records"
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *journalHandler) listRecentAudit(c *gin.Context) {
	var params dto.ListAuditParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.auditService.ListRecent(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		respondError(c, err, "Failed to list audit records")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAuditLogsResponse(page))
}
