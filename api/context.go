package api

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/optimus-events/event-registration/registration"
)

type ctxKey string

const (
	ctxRequestIdKey ctxKey = "REQUEST_ID"
	ctxLoggerKey    ctxKey = "LOGGER"
	ctxUserKey      ctxKey = "USER"
)

func ctxWithRequestId(ctx context.Context, requestId uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxRequestIdKey, requestId)
}

func ctxWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey, logger)
}

func getLoggerFromCtx(ctx context.Context) (*slog.Logger, bool) {
	logger, ok := ctx.Value(ctxLoggerKey).(*slog.Logger)
	return logger, ok
}

func ctxWithUser(ctx context.Context, user registration.User) context.Context {
	return context.WithValue(ctx, ctxUserKey, user)
}

func getUserFromCtx(ctx context.Context) (registration.User, bool) {
	user, ok := ctx.Value(ctxUserKey).(registration.User)
	return user, ok
}

var _ registration.SessionProvider = ContextSessions{}

// ContextSessions reads the user the session middleware put on the request context.
type ContextSessions struct{}

func (ContextSessions) CurrentUser(ctx context.Context) (registration.User, bool) {
	return getUserFromCtx(ctx)
}
