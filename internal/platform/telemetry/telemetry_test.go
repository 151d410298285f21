package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/todolist-service/internal/platform/telemetry"
)

func TestInitTracer(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		exporter string
		endpoint string
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, err := telemetry.InitTracer(ctx, "todolist-service", tt.exporter, tt.endpoint)
			if err != nil {
				t.Fatalf("InitTracer(%s) error = %v", tt.exporter, err)
			}
			// Shutdown may fail when no collector is listening.
			t.Cleanup(func() { _ = tp.Shutdown(ctx) })
		})
	}
}

func TestInitTracer_SetsGlobalPropagator(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, "todolist-service", telemetry.ExporterStdout, "")
	if err != nil {
		t.Fatalf("InitTracer error = %v", err)
	}
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })

	fields := otel.GetTextMapPropagator().Fields()
	want := map[string]bool{"traceparent": false, "baggage": false}
	for _, f := range fields {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, seen := range want {
		if !seen {
			t.Errorf("global propagator fields = %v, missing %q", fields, f)
		}
	}
}

func TestInitProviders_RejectBadExporterSettings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name     string
		exporter string
		endpoint string
	}{
		{name: "unsupported exporter", exporter: "zipkin"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := telemetry.InitTracer(ctx, "todolist-service", tt.exporter, tt.endpoint); err == nil {
				t.Error("InitTracer returned nil error")
			}
			if _, err := telemetry.InitMeter(ctx, "todolist-service", tt.exporter, tt.endpoint); err == nil {
				t.Error("InitMeter returned nil error")
			}
		})
	}
}

func TestInitMeter(t *testing.T) {
	ctx := context.Background()

	mp, err := telemetry.InitMeter(ctx, "todolist-service", telemetry.ExporterStdout, "")
	if err != nil {
		t.Fatalf("InitMeter(stdout) error = %v", err)
	}
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}
	assertInstruments(t, metrics)
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider())
	if err != nil {
		t.Fatalf("NewMetrics(noop) error = %v", err)
	}
	assertInstruments(t, metrics)

	// Recording on no-op instruments must not panic.
	metrics.StoreOperationTotal.Add(context.Background(), 1)
	metrics.StoreOperationDuration.Record(context.Background(), 0.01)
}

func assertInstruments(t *testing.T, m *telemetry.Metrics) {
	t.Helper()

	if m.ServerRequestDuration == nil {
		t.Error("ServerRequestDuration is nil")
	}
	if m.ServerRequestTotal == nil {
		t.Error("ServerRequestTotal is nil")
	}
	if m.StoreOperationDuration == nil {
		t.Error("StoreOperationDuration is nil")
	}
	if m.StoreOperationTotal == nil {
		t.Error("StoreOperationTotal is nil")
	}
}
