package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/ledger_closing_app/internal/apperrors"
	"github.com/SscSPs/ledger_closing_app/internal/core/domain"
	"github.com/SscSPs/ledger_closing_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON binds the request body into req and writes a 400 response on failure.
// Field-level problems are listed as field → failed rule. An empty body is accepted
// when allowEmpty is set.
func bindJSON(c *gin.Context, req any, allowEmpty bool) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		logger.Warn("Request failed validation", slog.Any("fields", fields))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "fields": fields})
		return false
	}
	logger.Warn("Failed to bind JSON", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
	return false
}

// int64Param reads a positive numeric path parameter, writing a 400 response when it is malformed.
func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// resolveActor prefers the authenticated actor over the one sent in the body.
func resolveActor(c *gin.Context, bodyActorID int64) (int64, bool) {
	if actorID, ok := middleware.GetActorIDFromContext(c); ok {
		return actorID, true
	}
	if bodyActorID > 0 {
		return bodyActorID, true
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Request has no acting user")
	c.JSON(http.StatusBadRequest, gin.H{"error": "actor_id is required"})
	return 0, false
}

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, domain.ErrEntryUnbalanced),
		errors.Is(err, domain.ErrInvalidLine),
		errors.Is(err, domain.ErrInvalidStatusTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.As(err, &appErr) && appErr.Code >= http.StatusBadRequest:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the mapped status. Server errors are logged and their cause hidden.
func respondError(c *gin.Context, err error, failureMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": failureMsg})
		return
	}
	logger.Warn(failureMsg, slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}
