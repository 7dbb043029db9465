package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/ib-77/coupler/pkg/coupler/logger"
)

type loggerCtxKey struct{}

type executionIDCtxKey struct{}

// WithLogger attaches a logger used by every command executed under ctx.
func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

// LoggerFrom returns the logger carried by ctx, or nil when none was set.
// The logger package helpers accept a nil logger, so the result can be
// used without checking.
func LoggerFrom(ctx context.Context) logger.Logger {
	l, _ := ctx.Value(loggerCtxKey{}).(logger.Logger)
	return l
}

// WithExecutionID stamps a pipeline execution identity into ctx.
func WithExecutionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, executionIDCtxKey{}, id)
}

// ExecutionIDFrom returns the execution identity carried by ctx, if any.
func ExecutionIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(executionIDCtxKey{}).(uuid.UUID)
	return id, ok
}

func executionFields(ctx context.Context) []logger.Field {
	if id, ok := ExecutionIDFrom(ctx); ok {
		return []logger.Field{logger.With("execution_id", id)}
	}
	return nil
}
