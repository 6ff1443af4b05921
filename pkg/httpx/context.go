package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID carries the authenticated user id as an int64.
	CtxKeyUserID ctxKey = "user_id"

	// CtxKeyPrincipal carries the full resolved principal. The concrete
	// type is owned by the application layer.
	CtxKeyPrincipal ctxKey = "principal"
)

// UserIDFromContext returns the authenticated user id, or 0 when the
// request is unauthenticated.
func UserIDFromContext(ctx context.Context) int64 {
	if v, ok := ctx.Value(CtxKeyUserID).(int64); ok {
		return v
	}
	return 0
}
