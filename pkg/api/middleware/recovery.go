package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"mercator-hq/solarsystem/pkg/api/types"
)

// RecoveryMiddleware recovers from panics in HTTP handlers and returns
// 500 {"message":"Internal Server Error"}. The panic and stack trace are
// logged but never sent to the client.
//
// Example usage:
//
//	handler = RecoveryMiddleware(handler)
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}

				slog.ErrorContext(r.Context(), "panic in handler",
					"error", err,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				types.WriteMessage(w, http.StatusInternalServerError, types.MessageInternalError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
