package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// contextKey is unexported so values stored here cannot collide with other packages.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	actorIDCtxKey = contextKey("actorID")
)

// GetLoggerFromCtx returns the request-scoped logger, or slog.Default() outside a request.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// WithActorID stores the authenticated actor in ctx.
func WithActorID(ctx context.Context, actorID int64) context.Context {
	return context.WithValue(ctx, actorIDCtxKey, actorID)
}

// ActorIDFromCtx returns the actor set by the auth middleware.
func ActorIDFromCtx(ctx context.Context) (int64, bool) {
	actorID, ok := ctx.Value(actorIDCtxKey).(int64)
	return actorID, ok && actorID > 0
}

// GetActorIDFromContext retrieves the authenticated actor from the request of c.
func GetActorIDFromContext(c *gin.Context) (int64, bool) {
	return ActorIDFromCtx(c.Request.Context())
}
