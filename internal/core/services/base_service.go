package services

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/ledger_closing_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_closing_app/internal/middleware"
)

// Clock returns the current time. Services take it as a dependency so tests can pin it.
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

// BaseService provides common functionality for all services
type BaseService struct {
	Auditor portssvc.AuditSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// RecordAudit appends an audit record once the financial change has committed.
// A failed write never undoes that change: it is logged at warn level and
// returned as a warning text for the caller. An empty string means success.
func (s *BaseService) RecordAudit(ctx context.Context, entryID *int64, oldStatus, newStatus string, actorID int64, note string) string {
	if s.Auditor == nil {
		s.LogDebug(ctx, "No audit service configured, audit record skipped", slog.String("note", note))
		return ""
	}
	if err := s.Auditor.Record(ctx, entryID, oldStatus, newStatus, actorID, note); err != nil {
		s.LogWarn(ctx, "Audit record could not be written",
			slog.String("error", err.Error()),
			slog.String("old_status", oldStatus),
			slog.String("new_status", newStatus),
			slog.Int64("actor_id", actorID))
		return "audit record could not be written: " + err.Error()
	}
	return ""
}
