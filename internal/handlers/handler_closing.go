package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_closing_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_closing_app/internal/dto"
	"github.com/SscSPs/ledger_closing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// closingHandler handles the fiscal year closing workflow.
type closingHandler struct {
	fiscalYearService portssvc.FiscalYearSvcFacade
	checklistService  portssvc.ClosureChecklistSvc
}

func newClosingHandler(fys portssvc.FiscalYearSvcFacade, cs portssvc.ClosureChecklistSvc) *closingHandler {
	return &closingHandler{
		fiscalYearService: fys,
		checklistService:  cs,
	}
}

// registerClosingRoutes registers routes related to fiscal year closing.
func registerClosingRoutes(rg *gin.RouterGroup, fiscalYearService portssvc.FiscalYearSvcFacade, checklistService portssvc.ClosureChecklistSvc) {
	h := newClosingHandler(fiscalYearService, checklistService)

	closing := rg.Group("/financial-closing")
	{
		closing.POST("/setup/new-year", h.createFiscalYear)

		year := closing.Group("/year/:yearID")
		year.GET("", h.getFiscalYear)
		year.GET("/summary", h.getSummary)
		year.GET("/validation", h.validateForClosing)
		year.POST("/execute", h.executeClosing)
		year.POST("/reopen", h.reopenYear)
		year.GET("/steps", h.listSteps)
		year.POST("/steps/:stepID/complete", h.completeStep)
	}
}

// getFiscalYear godoc
// @Summary Get a fiscal year
// @Tags financial-closing
// @Produce  json
// @Param   yearID path int true "Fiscal year ID"
// @Success 200 {object} dto.FiscalYearResponse
// @Failure 404 {object} map[string]string "Fiscal year not found"
// @Security BearerAuth
// @Router /financial-closing/year/{yearID} [get]
func (h *closingHandler) getFiscalYear(c *gin.Context) {
	yearID, ok := int64Param(c, "yearID")
	if !ok {
		return
	}

	year, err := h.fiscalYearService.GetFiscalYear(c.Request.Context(), yearID)
	if err != nil {
		respondError(c, err, "Failed to retrieve fiscal year")
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(year))
}

// getSummary godoc
// @Summary Fiscal year closing summary
// @Description Returns the year, live closing figures, checklist and validation state
// @Tags financial-closing
// @Produce  json
// @Param   yearID path int true "Fiscal year ID"
// @Success 200 {object} dto.YearSummaryResponse
// @Failure 400 {object} map[string]string "Invalid year ID"
// @Failure 404 {object} map[string]string "Fiscal year not found"
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Security BearerAuth
// @Router /financial-closing/year/{yearID}/summary [get]
func (h *closingHandler) getSummary(c *gin.Context) {
	yearID, ok := int64Param(c, "yearID")
	if !ok {
		return
	}

	summary, err := h.fiscalYearService.GetSummary(c.Request.Context(), yearID)
	if err != nil {
		respondError(c, err, "Failed to build summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToYearSummaryResponse(summary))
}

// validateForClosing godoc
// @Summary Check whether a fiscal year can be closed
// @Description Lists every reason preventing the close. A failed check is still a 200 response.
// @Tags financial-closing
// @Produce  json
// @Param   yearID path int true "Fiscal year ID"
// @Success 200 {object} dto.ValidationResponse
// @Failure 404 {object} map[string]string "Fiscal year not found"
// @Failure 500 {object} map[string]string "Failed to validate fiscal year"
// @Security BearerAuth
// @Router /financial-closing/year/{yearID}/validation [get]
func (h *closingHandler) validateForClosing(c *gin.Context) {
	yearID, ok := int64Param(c, "yearID")
	if !ok {
		return
	}

	result, err := h.fiscalYearService.ValidateForClosing(c.Request.Context(), yearID)
	if err != nil {
		respondError(c, err, "Failed to validate fiscal year")
		return
	}
	c.JSON(http.StatusOK, dto.ValidationResponse{CanClose: result.CanClose, Errors: result.Errors})
}

// executeClosing godoc
// @Summary Close a fiscal year
// @Description Validates the year, posts the closing entry, completes the checklist and marks the year closed in one transaction
// @Tags financial-closing
// @Accept  json
// @Produce  json
// @Param   yearID path int true "Fiscal year ID"
// @Param   actor body dto.ActorRequest false "Acting user when no bearer token is sent"
// @Success 200 {object} domain.ClosingOutcome
// @Failure 404 {object} map[string]string "Fiscal year not found"
// @Failure 422 {object} domain.ClosingOutcome "Validation failed, nothing was written"
// @Failure 500 {object} map[string]string "Failed to close fiscal year"
// @Security BearerAuth
// @Router /financial-closing/year/{yearID}/execute [post]
func (h *closingHandler) executeClosing(c *gin.Context) {
	yearID, ok := int64Param(c, "yearID")
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

	outcome, err := h.fiscalYearService.Close(c.Request.Context(), yearID, actorID)
	if err != nil {
		respondError(c, err, "Failed to close fiscal year")
		return
	}
	if !outcome.Closed {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("Fiscal year not closed",
			slog.Int64("fiscal_year_id", yearID),
			slog.Any("errors", outcome.Validation.Errors))
		c.JSON(http.StatusUnprocessableEntity, outcome)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// reopenYear godoc
// @Summary Reopen a closed fiscal year
// @Description Deletes the closing entry, clears the closed stamp and resets the checklist
// @Tags financial-closing
// @Accept  json
// @Produce  json
// @Param   yearID path int true "Fiscal year ID"
// @Param   actor body dto.ActorRequest false "Acting user when no bearer token is sent"
// @Success 200 {object} domain.ReopenOutcome
// @Failure 404 {object} map[string]string "Fiscal year not found"
// @Failure 409 {object} domain.ReopenOutcome "Fiscal year is not closed"
// @Failure 500 {object} map[string]string "Failed to reopen fiscal year"
// @Security BearerAuth
// @Router /financial-closing/year/{yearID}/reopen [post]
func (h *closingHandler) reopenYear(c *gin.Context) {
	yearID, ok := int64Param(c, "yearID")
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

	outcome, err := h.fiscalYearService.Reopen(c.Request.Context(), yearID, actorID)
	if err != nil {
		respondError(c, err, "Failed to reopen fiscal year")
		return
	}
	if !outcome.Reopened {
		c.JSON(http.StatusConflict, outcome)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// createFiscalYear godoc
// @Summary Set up a new fiscal year
// @Description Creates an open fiscal year with its closing accounts, rates and checklist
// @Tags financial-closing
// @Accept  json
// @Produce  json
// @Param   year body dto.CreateFiscalYearRequest true "Fiscal year configuration"
// @Success 201 {object} dto.CreateFiscalYearResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Overlaps an existing fiscal year"
// @Failure 500 {object} map[string]string "Failed to create fiscal year"
// @Security BearerAuth
// @Router /financial-closing/setup/new-year [post]
func (h *closingHandler) createFiscalYear(c *gin.Context) {
	var req dto.CreateFiscalYearRequest
	if !bindJSON(c, &req, false) {
		return
	}
	actorID, ok := resolveActor(c, req.ActorID)
	if !ok {
		return
	}

	year, warning, err := h.fiscalYearService.CreateFiscalYear(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err, "Failed to create fiscal year")
		return
	}
	c.JSON(http.StatusCreated, dto.CreateFiscalYearResponse{ID: year.ID, AuditWarning: warning})
}

// listSteps godoc
// @Summary List closure checklist steps
// @Tags financial-closing
// @Produce  json
// @Param   yearID path int true "Fiscal year ID"
// @Success 200 {array} dto.ClosureStepResponse
// @Failure 500 {object} map[string]string "Failed to list closure steps"
// @Security BearerAuth
// @Router /financial-closing/year/{yearID}/steps [get]
func (h *closingHandler) listSteps(c *gin.Context) {
	yearID, ok := int64Param(c, "yearID")
	if !ok {
		return
	}

	steps, err := h.checklistService.ListSteps(c.Request.Context(), yearID)
	if err != nil {
		respondError(c, err, "Failed to list closure steps")
		return
	}
	c.JSON(http.StatusOK, dto.ToClosureStepResponses(steps))
}

// completeStep godoc
// @Summary Mark a closure step completed
// @Tags financial-closing
// @Accept  json
// @Produce  json
// @Param   yearID path int true "Fiscal year ID"
// @Param   stepID path int true "Closure step ID"
// @Param   actor body dto.ActorRequest false "Acting user when no bearer token is sent"
// @Success 200 {object} dto.CompleteStepResponse
// @Failure 404 {object} map[string]string "Step not found"
// @Failure 409 {object} map[string]string "Fiscal year is closed"
// @Security BearerAuth
// @Router /financial-closing/year/{yearID}/steps/{stepID}/complete [post]
func (h *closingHandler) completeStep(c *gin.Context) {
	yearID, ok := int64Param(c, "yearID")
	if !ok {
		return
	}
	stepID, ok := int64Param(c, "stepID")
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

	completion, err := h.checklistService.CompleteStep(c.Request.Context(), yearID, stepID, actorID)
	if err != nil {
		respondError(c, err, "Failed to complete closure step")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompleteStepResponse(completion))
}
