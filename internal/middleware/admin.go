package middleware

import (
	"net/http"
	"strings"

	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/session"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/transport"
)

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header, or "" when the header is absent or malformed.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// AdminAuth rejects any request whose bearer token is not in the live
// session set. Authorization runs before the handler touches the store, so a
// 401 never leaks whether a record exists.
func AdminAuth(guard session.Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !guard.Validate(BearerToken(r)) {
				transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
