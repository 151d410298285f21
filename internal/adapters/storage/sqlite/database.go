// Package sqlite persists lists and entries in a SQLite database using the
// pure-Go modernc.org/sqlite driver.
//
// Reads go through a pooled connection set; writes go through a single
// connection so they are serialized. Every store call runs behind a circuit
// breaker and is traced and measured:
//
//	db, err := sqlite.Open(ctx, cfg.Database, logger, metrics)
//	defer db.Close()
//	lists := sqlite.NewListStore(db)
//	entries := sqlite.NewEntryStore(db)
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"strconv"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
	"github.com/jsamuelsen11/todolist-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const (
	driverName  = "sqlite"
	checkerName = "database"
)

var _ ports.HealthChecker = (*DB)(nil)

// DB owns the connection pools, circuit breaker and instrumentation shared by
// ListStore and EntryStore.
type DB struct {
	read    *sql.DB
	write   *sql.DB
	cfg     config.DatabaseConfig
	breaker *gobreaker.CircuitBreaker[struct{}]
	tracer  trace.Tracer
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Open connects to the database at cfg.Path, verifies both pools and applies
// pending migrations. A nil metrics disables metric recording; a nil logger
// discards logs.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger, metrics *telemetry.Metrics) (*DB, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	d := &DB{
		cfg:     cfg,
		tracer:  otel.Tracer(telemetry.InstrumentationName),
		metrics: metrics,
		logger:  logger,
	}
	d.breaker = newBreaker(cfg.CircuitBreaker, logger)

	if err := d.openPools(); err != nil {
		return nil, err
	}

	if err := d.ping(ctx); err != nil {
		_ = d.closePools()
		return nil, fmt.Errorf("connecting to database %s: %w", cfg.Path, err)
	}

	applied, err := d.migrate(ctx)
	if err != nil {
		_ = d.closePools()
		return nil, fmt.Errorf("migrating database %s: %w", cfg.Path, err)
	}

	logger.InfoContext(ctx, "database opened",
		slog.String("path", cfg.Path),
		slog.Bool("wal", d.walEnabled()),
		slog.Int("read_max_open_conns", d.read.Stats().MaxOpenConnections),
		slog.Int("migrations_applied", applied),
	)

	return d, nil
}

func (d *DB) openPools() error {
	if d.cfg.Path == MemoryPath {
		// Each connection to ":memory:" is a separate database, so reads and
		// writes share one long-lived connection.
		db, err := sql.Open(driverName, d.dsn(false))
		if err != nil {
			return fmt.Errorf("opening in-memory database: %w", err)
		}
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		d.read, d.write = db, db
		return nil
	}

	read, err := sql.Open(driverName, d.dsn(false))
	if err != nil {
		return fmt.Errorf("opening read pool: %w", err)
	}
	read.SetMaxOpenConns(d.cfg.MaxOpenConns)
	read.SetMaxIdleConns(d.cfg.MaxIdleConns)
	read.SetConnMaxLifetime(d.cfg.ConnMaxLifetime)

	write, err := sql.Open(driverName, d.dsn(true))
	if err != nil {
		_ = read.Close()
		return fmt.Errorf("opening write pool: %w", err)
	}
	write.SetMaxOpenConns(1)
	write.SetMaxIdleConns(1)
	write.SetConnMaxLifetime(d.cfg.ConnMaxLifetime)

	d.read, d.write = read, write
	return nil
}

// dsn builds a modernc.org/sqlite data source name. Pragmas are applied by
// the driver on every new connection.
func (d *DB) dsn(writer bool) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout("+strconv.FormatInt(d.cfg.BusyTimeout.Milliseconds(), 10)+")")
	if d.walEnabled() {
		q.Add("_pragma", "journal_mode(WAL)")
		q.Add("_pragma", "synchronous(NORMAL)")
	}
	if writer {
		// Take the write lock at BEGIN instead of upgrading mid-transaction.
		q.Set("_txlock", "immediate")
	}

	if d.cfg.Path == MemoryPath {
		return MemoryPath + "?" + q.Encode()
	}
	return "file:" + d.cfg.Path + "?" + q.Encode()
}

func (d *DB) walEnabled() bool {
	return d.cfg.EnableWAL && d.cfg.Path != MemoryPath
}

func (d *DB) ping(ctx context.Context) error {
	if err := d.read.PingContext(ctx); err != nil {
		return fmt.Errorf("read pool: %w", err)
	}
	if d.write != d.read {
		if err := d.write.PingContext(ctx); err != nil {
			return fmt.Errorf("write pool: %w", err)
		}
	}
	return nil
}

// Name implements [ports.HealthChecker].
func (d *DB) Name() string {
	return checkerName
}

// HealthCheck pings both pools and reports the circuit breaker state. An open
// breaker fails the check; a half-open one reports degraded.
func (d *DB) HealthCheck(ctx context.Context) error {
	if err := d.ping(ctx); err != nil {
		return err
	}

	switch state := d.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return errors.New("degraded (circuit breaker half-open)")
	case gobreaker.StateOpen:
		return errors.New("failing (circuit breaker open)")
	default:
		return fmt.Errorf("unknown circuit breaker state %v", state)
	}
}

// Close checkpoints the WAL into the main database file and closes both
// pools.
func (d *DB) Close() error {
	if d.walEnabled() {
		if _, err := d.write.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
			d.logger.Warn("failed to checkpoint WAL", slog.Any("error", err))
		}
	}
	if err := d.closePools(); err != nil {
		return fmt.Errorf("closing database %s: %w", d.cfg.Path, err)
	}
	d.logger.Info("database closed", slog.String("path", d.cfg.Path))
	return nil
}

func (d *DB) closePools() error {
	errs := []error{d.read.Close()}
	if d.write != d.read {
		errs = append(errs, d.write.Close())
	}
	return errors.Join(errs...)
}

// toUint32 clamps v into the uint32 range.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
