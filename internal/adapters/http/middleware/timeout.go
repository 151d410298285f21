package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
)

// Timeout returns middleware that enforces a request deadline. The handler
// runs in its own goroutine with a context carrying the deadline, so store
// calls observe it. If the handler has not finished when the deadline
// passes, a 504 problem response is written and later handler output is
// discarded. A panic in the handler goroutine is re-raised on the serving
// goroutine so Recovery still sees it.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			r = r.WithContext(ctx)

			tw := &timeoutWriter{w: w}
			done := make(chan struct{})
			panicked := make(chan *timeoutPanic, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- &timeoutPanic{value: v, stack: debug.Stack()}
					}
				}()
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.flush()
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				dto.WriteProblem(w, r, http.StatusGatewayTimeout,
					fmt.Sprintf("request did not complete within %s", timeout))
			}
		})
	}
}

// timeoutPanic carries a handler panic and its original stack across
// goroutines.
type timeoutPanic struct {
	value any
	stack []byte
}

func (p *timeoutPanic) Error() string {
	return fmt.Sprint(p.value)
}

// Unwrap exposes an error panic value, such as http.ErrAbortHandler.
func (p *timeoutPanic) Unwrap() error {
	err, _ := p.value.(error)
	return err
}

// timeoutWriter buffers the handler's response until the handler returns.
// After a timeout, writes are dropped and report http.ErrHandlerTimeout.
type timeoutWriter struct {
	w           http.ResponseWriter
	mu          sync.Mutex
	header      http.Header
	buf         []byte
	statusCode  int
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) Header() http.Header {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.header == nil {
		tw.header = make(http.Header)
	}
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.statusCode = http.StatusOK
		tw.wroteHeader = true
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.statusCode = code
	tw.wroteHeader = true
}

// flush copies the buffered response to the underlying writer. Must be
// called with tw.mu held.
func (tw *timeoutWriter) flush() {
	if tw.header != nil {
		maps.Copy(tw.w.Header(), tw.header)
	}
	if tw.wroteHeader {
		tw.w.WriteHeader(tw.statusCode)
	}
	if len(tw.buf) > 0 {
		_, _ = tw.w.Write(tw.buf)
	}
}
