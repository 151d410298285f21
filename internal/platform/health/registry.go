// Package health tracks the readiness of the service's dependencies. The
// readiness endpoint asks the Registry whether every registered component,
// the list database in particular, can serve traffic.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single checker when the registry is built
// without WithCheckTimeout.
const DefaultCheckTimeout = 2 * time.Second

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout sets how long each checker may run per probe.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// Registry is a concurrency-safe [ports.HealthRegistry]. Checkers run in
// parallel, each under its own deadline.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a checker.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every checker and returns results keyed by checker name. A
// nil value means healthy. When two checkers share a name, the one
// registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() {
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			errs[i] = c.HealthCheck(checkCtx)
		})
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

// CheckFunc adapts a function into a named [ports.HealthChecker].
type CheckFunc struct {
	name  string
	check func(context.Context) error
}

var _ ports.HealthChecker = CheckFunc{}

// NewCheckFunc returns a checker called name that runs check.
func NewCheckFunc(name string, check func(context.Context) error) CheckFunc {
	return CheckFunc{name: name, check: check}
}

// Name implements [ports.HealthChecker].
func (c CheckFunc) Name() string { return c.name }

// HealthCheck implements [ports.HealthChecker].
func (c CheckFunc) HealthCheck(ctx context.Context) error { return c.check(ctx) }
