package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strconv"
	"strings"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// migration is one versioned schema change, loaded from
// migrations/<version>_<name>.sql.
type migration struct {
	version int64
	name    string
	sql     string
}

func loadMigrations() ([]migration, error) {
	files, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("reading migrations: %w", err)
	}

	migrations := make([]migration, 0, len(files))
	seen := make(map[int64]string, len(files))
	for _, f := range files {
		base := strings.TrimSuffix(f.Name(), ".sql")
		rawVersion, name, ok := strings.Cut(base, "_")
		if !ok || name == "" {
			return nil, fmt.Errorf("migration %s: want <version>_<name>.sql", f.Name())
		}
		version, err := strconv.ParseInt(rawVersion, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("migration %s: parsing version: %w", f.Name(), err)
		}
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("duplicate migration version %d: %s and %s", version, prev, name)
		}
		seen[version] = name

		body, err := migrationFiles.ReadFile(path.Join("migrations", f.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading migration %s: %w", f.Name(), err)
		}
		migrations = append(migrations, migration{version: version, name: name, sql: string(body)})
	}

	slices.SortFunc(migrations, func(a, b migration) int {
		return int(a.version - b.version)
	})
	return migrations, nil
}

// migrate applies every migration not yet recorded in schema_migrations and
// returns how many it applied. Each migration commits on its own.
func (d *DB) migrate(ctx context.Context) (int, error) {
	const createTable = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT    NOT NULL,
			applied_at TEXT    NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`
	if _, err := d.write.ExecContext(ctx, createTable); err != nil {
		return 0, fmt.Errorf("creating schema_migrations: %w", err)
	}

	migrations, err := loadMigrations()
	if err != nil {
		return 0, err
	}

	applied, err := d.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, m := range migrations {
		if applied[m.version] {
			continue
		}
		err := d.withTx(ctx, d.write, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, m.sql); err != nil {
				return fmt.Errorf("executing: %w", err)
			}
			_, err := tx.ExecContext(ctx,
				"INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.version, m.name)
			return err
		})
		if err != nil {
			return count, fmt.Errorf("applying migration %d_%s: %w", m.version, m.name, err)
		}
		d.logger.InfoContext(ctx, "migration applied",
			slog.Int64("version", m.version),
			slog.String("name", m.name),
		)
		count++
	}
	return count, nil
}

func (d *DB) appliedVersions(ctx context.Context) (map[int64]bool, error) {
	rows, err := d.write.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("querying schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int64]bool)
	for rows.Next() {
		var v int64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning schema_migrations: %w", err)
		}
		applied[v] = true
	}
	return applied, rows.Err()
}
