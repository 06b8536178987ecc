package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/mistore/storefront/internal/session"
)

type ctxKey int

const ctxSessionID ctxKey = iota

// Session resolves the visitor's session id from header.
// A missing or malformed id is replaced by a freshly minted one,
// which is echoed back in the same header.
func Session(header string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if _, err := uuid.Parse(id); err != nil {
				id = session.NewID()
			}

			w.Header().Set(header, id)

			ctx := context.WithValue(r.Context(), ctxSessionID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionID returns the session id stored by Session, or ""
func GetSessionID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}
