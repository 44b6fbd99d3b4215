// Package requesttime pins one "now" per request so every appointment and
// log line produced by a request shares a timestamp.
package requesttime

import (
	"net/http"
	"time"

	"clinic/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
