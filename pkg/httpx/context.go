package httpx

import "context"

type ctxKey string

const (
	CtxKeyAccountID ctxKey = "account_id"
	CtxKeyRole      ctxKey = "role"
	CtxKeyClaims    ctxKey = "claims"
)

// AccountIDFromCtx returns the authenticated account id, or "" when the
// request is unauthenticated.
func AccountIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyAccountID).(string); ok {
		return v
	}
	return ""
}

// RoleFromCtx returns the authenticated principal's role, or "".
func RoleFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}
