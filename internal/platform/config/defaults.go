package config

const (
	defaultServerPort = 8080

	defaultDBMaxOpenConns = 8
	defaultDBMaxIdleConns = 4

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.path":                            "todolist.db",
		"database.max_open_conns":                  defaultDBMaxOpenConns,
		"database.max_idle_conns":                  defaultDBMaxIdleConns,
		"database.conn_max_lifetime":               "1h",
		"database.busy_timeout":                    "5s",
		"database.enable_wal":                      true,
		"database.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"rate_limit.requests_per_second": 0,
		"rate_limit.burst_size":          0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todolist-service",
	}
}
