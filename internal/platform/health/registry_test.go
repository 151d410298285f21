package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todolist-service/internal/platform/health"
	"github.com/jsamuelsen11/todolist-service/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	healthy := mocks.NewMockHealthChecker(t)
	healthy.EXPECT().Name().Return("database")
	healthy.EXPECT().HealthCheck(mock.Anything).Return(nil)

	unhealthy := mocks.NewMockHealthChecker(t)
	unhealthy.EXPECT().Name().Return("disk")
	unhealthy.EXPECT().HealthCheck(mock.Anything).Return(errors.New("read-only filesystem"))

	r := health.New()
	r.Register(healthy)
	r.Register(unhealthy)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["database"] != nil {
		t.Errorf("database check = %v, want nil", results["database"])
	}
	if results["disk"] == nil || results["disk"].Error() != "read-only filesystem" {
		t.Errorf("disk check = %v, want %q", results["disk"], "read-only filesystem")
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("database")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	if got := r.CheckAll(ctx)["database"]; !errors.Is(got, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", got)
	}
}

func TestCheckAll_AppliesCheckTimeout(t *testing.T) {
	t.Parallel()

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(health.NewCheckFunc("database", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))

	start := time.Now()
	got := r.CheckAll(context.Background())["database"]

	if !errors.Is(got, context.DeadlineExceeded) {
		t.Errorf("database check = %v, want context.DeadlineExceeded", got)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("CheckAll took %v, want it bounded by the check timeout", elapsed)
	}
}

func TestCheckAll_RunsCheckersConcurrently(t *testing.T) {
	t.Parallel()

	// Each checker waits for the other; sequential execution would time out.
	var ready sync.WaitGroup
	ready.Add(2)
	block := func(ctx context.Context) error {
		ready.Done()
		done := make(chan struct{})
		go func() { ready.Wait(); close(done) }()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r := health.New(health.WithCheckTimeout(time.Second))
	r.Register(health.NewCheckFunc("a", block))
	r.Register(health.NewCheckFunc("b", block))

	for name, err := range r.CheckAll(context.Background()) {
		if err != nil {
			t.Errorf("%s check = %v, want nil", name, err)
		}
	}
}

func TestCheckAll_DuplicateNames_LastWriteWins(t *testing.T) {
	t.Parallel()

	secondErr := errors.New("second failure")

	r := health.New()
	r.Register(health.NewCheckFunc("database", func(context.Context) error { return nil }))
	r.Register(health.NewCheckFunc("database", func(context.Context) error { return secondErr }))

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !errors.Is(results["database"], secondErr) {
		t.Errorf("database check = %v, want %v (from last registered checker)", results["database"], secondErr)
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	for i := range goroutines {
		if i%2 == 0 {
			wg.Go(func() {
				r.Register(health.NewCheckFunc("database", func(context.Context) error { return nil }))
			})
		} else {
			wg.Go(func() {
				r.CheckAll(context.Background())
			})
		}
	}

	wg.Wait()
}
