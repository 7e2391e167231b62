package middleware

import (
	"net/http"
	"runtime/debug"

	"productivity-service/internal/logging"
)

// Recovery turns a panicking handler into a 500 response
func Recovery(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					logger.Error(r.Context(), "panic recovered",
						"path", r.URL.Path,
						"panic", rec,
						"stack", string(debug.Stack()),
					)

					internalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
