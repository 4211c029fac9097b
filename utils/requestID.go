package utils

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "rqID"

// ContextWithRequestID stores rqID in ctx. An empty rqID is replaced with a new uuid.
func ContextWithRequestID(ctx context.Context, rqID string) context.Context {
	if rqID == "" {
		rqID = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey, rqID)
}

func CreateCtxWithRqID(ctx context.Context) context.Context {
	return ContextWithRequestID(ctx, "")
}

func GetRequestIDFromCtx(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	rqID, _ := ctx.Value(requestIDKey).(string)
	return rqID
}
