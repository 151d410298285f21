package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todolist"
	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
)

func testConfig(path string) config.DatabaseConfig {
	return config.DatabaseConfig{
		Path:            path,
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Hour,
		BusyTimeout:     5 * time.Second,
		EnableWAL:       true,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Minute,
			HalfOpenLimit: 1,
		},
	}
}

// openTestDB opens a fresh file-backed database in a temp dir and closes it
// when the test ends.
func openTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(),
		testConfig(filepath.Join(t.TempDir(), "todolist.db")), logging.Discard(), nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func openTestStores(t *testing.T) (*sqlite.ListStore, *sqlite.EntryStore) {
	t.Helper()

	db := openTestDB(t)
	return sqlite.NewListStore(db), sqlite.NewEntryStore(db)
}

func saveList(t *testing.T, store *sqlite.ListStore, name string, descriptions ...string) *todolist.List {
	t.Helper()

	list := &todolist.List{Name: name}
	for _, d := range descriptions {
		list.Entries = append(list.Entries, todolist.Entry{Description: d})
	}
	saved, err := store.Save(context.Background(), list)
	if err != nil {
		t.Fatalf("Save(%q) error = %v", name, err)
	}
	return saved
}
