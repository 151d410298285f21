package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
)

// Recovery returns middleware that turns a handler panic into a logged
// error and an RFC 9457 500 response. The panic value and stack never reach
// the client. If the response has already started only the log entry is
// emitted. http.ErrAbortHandler is re-raised so the server aborts the
// connection as intended.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(http.ErrAbortHandler)
				}

				stack := debug.Stack()
				var tp *timeoutPanic
				if err, ok := v.(error); ok && errors.As(err, &tp) {
					stack = tp.stack
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(stack)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestIDFromContext(r.Context())),
				)

				if !rw.headerWritten {
					dto.WriteProblem(rw, r, http.StatusInternalServerError, "an unexpected error occurred")
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
