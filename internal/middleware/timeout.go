package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds each request with a context deadline so a slow or stuck
// store cannot suspend the handler indefinitely. database/sql aborts
// in-flight queries when the request context expires.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
