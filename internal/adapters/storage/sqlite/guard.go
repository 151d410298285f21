package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/todolist-service/internal/platform/telemetry"
)

const dbSystem = "sqlite"

func newBreaker(cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        checkerName,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isHealthyOutcome,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// isHealthyOutcome reports whether err says nothing about the database's
// health. Missing rows and constraint violations are ordinary outcomes.
func isHealthyOutcome(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict)
}

// run executes fn as the store operation op: behind the circuit breaker,
// inside a client span, and with duration and outcome metrics.
func (d *DB) run(ctx context.Context, op string, fn func(context.Context) error) error {
	start := time.Now()

	ctx, span := d.tracer.Start(ctx, dbSystem+" "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrDBSystem.String(dbSystem),
			telemetry.AttrDBOperation.String(op),
		),
	)
	defer span.End()

	// A caller that cancelled or ran out of time says nothing about the
	// database, so the breaker sees that call as a success.
	var opErr error
	_, err := d.breaker.Execute(func() (struct{}, error) {
		opErr = fn(ctx)
		if opErr != nil && ctx.Err() != nil {
			return struct{}{}, nil
		}
		return struct{}{}, opErr
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		err = fmt.Errorf("%w: database circuit breaker is %s", domain.ErrUnavailable, d.breaker.State())
	case err == nil:
		err = opErr
	}

	if err != nil {
		span.RecordError(err)
		if !isHealthyOutcome(err) && ctx.Err() == nil {
			span.SetStatus(codes.Error, err.Error())
		}
	}
	d.recordMetrics(ctx, op, start, err)

	return err
}

// recordMetrics is a no-op when the DB was opened without metrics.
func (d *DB) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if d.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(dbSystem),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(outcome(err)),
	)

	d.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	d.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return telemetry.ResultSuccess
	case errors.Is(err, domain.ErrNotFound):
		return telemetry.ResultNotFound
	case errors.Is(err, domain.ErrConflict):
		return telemetry.ResultConflict
	case errors.Is(err, domain.ErrUnavailable):
		return telemetry.ResultCircuitOpen
	default:
		return telemetry.ResultError
	}
}
