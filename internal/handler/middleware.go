package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDMiddleware tags each request with an ID for log correlation.
// An incoming X-Request-ID header is honored; otherwise a new one is
// generated. The ID is echoed back in the response headers.
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", requestID)

			ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
