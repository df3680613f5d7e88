package httpserver

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// RequestIDMiddleware echoes an incoming request id header, or assigns a
// fresh one, so responses are correlatable across the proxy chain.
func RequestIDMiddleware(headerName string) func(next http.Handler) http.Handler {
	if strings.TrimSpace(headerName) == "" {
		headerName = "X-Request-Id"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := strings.TrimSpace(r.Header.Get(headerName))
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set(headerName, rid)
			next.ServeHTTP(w, r)
		})
	}
}
