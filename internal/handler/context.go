package handler

import "context"

type ContextKey string

var RequestIDCtxKey ContextKey = "requestID"

func requestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(RequestIDCtxKey).(string)
	return requestID
}
