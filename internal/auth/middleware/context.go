package auth

import "context"

type ctxKey string

const ctxKeySub ctxKey = "sub"

// WithSubject stamps the authenticated student id onto the context.
func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, ctxKeySub, sub)
}

// SubjectFromContext returns the authenticated student id, or "" on an
// unauthenticated request.
func SubjectFromContext(ctx context.Context) string {
	if v := ctx.Value(ctxKeySub); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
