package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/todolist-service/internal/domain/todolist"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

var _ ports.EntryStore = (*EntryStore)(nil)

// EntryStore persists individual entries.
type EntryStore struct {
	db *DB
}

// NewEntryStore returns an EntryStore backed by db.
func NewEntryStore(db *DB) *EntryStore {
	return &EntryStore{db: db}
}

// FindAllByListID returns the entries of the given list ordered by id. A
// list without entries, or a missing list, yields an empty slice.
func (s *EntryStore) FindAllByListID(ctx context.Context, listID int64) ([]todolist.Entry, error) {
	var entries []todolist.Entry
	err := s.db.run(ctx, "entries.select_by_list", func(ctx context.Context) error {
		var err error
		entries, err = selectEntries(ctx, s.db.read,
			"SELECT id, description, list_id FROM entries WHERE list_id = ? ORDER BY id", listID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("finding entries of list %d: %w", listID, err)
	}
	return entries, nil
}

// FindByID returns the entry with the given id. found is false when no such
// entry exists.
func (s *EntryStore) FindByID(ctx context.Context, id int64) (*todolist.Entry, bool, error) {
	var entry *todolist.Entry
	err := s.db.run(ctx, "entries.select", func(ctx context.Context) error {
		e := todolist.Entry{}
		err := s.db.read.QueryRowContext(ctx,
			"SELECT id, description, list_id FROM entries WHERE id = ?", id).
			Scan(&e.ID, &e.Description, &e.ListID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		entry = &e
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("finding entry %d: %w", id, err)
	}
	return entry, entry != nil, nil
}

// Save inserts the entry and returns it with its id assigned. An entry whose
// ListID names no list yields domain.ErrConflict.
func (s *EntryStore) Save(ctx context.Context, entry *todolist.Entry) (*todolist.Entry, error) {
	var saved todolist.Entry
	err := s.db.run(ctx, "entries.insert", func(ctx context.Context) error {
		var err error
		saved, err = insertEntry(ctx, s.db.write, *entry)
		return conflictf(err, "entry cannot be stored in list %d", entry.ListID)
	})
	if err != nil {
		return nil, fmt.Errorf("saving entry: %w", err)
	}
	return &saved, nil
}

// Delete removes the entry. Deleting a missing entry yields
// domain.ErrNotFound.
func (s *EntryStore) Delete(ctx context.Context, id int64) error {
	err := s.db.run(ctx, "entries.delete", func(ctx context.Context) error {
		res, err := s.db.write.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
		if err != nil {
			return err
		}
		return requireAffected(res, "entry", id)
	})
	if err != nil {
		return fmt.Errorf("deleting entry %d: %w", id, err)
	}
	return nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func selectEntries(ctx context.Context, q querier, query string, args ...any) ([]todolist.Entry, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting entries: %w", err)
	}
	defer rows.Close()

	entries := []todolist.Entry{}
	for rows.Next() {
		var e todolist.Entry
		if err := rows.Scan(&e.ID, &e.Description, &e.ListID); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func insertEntry(ctx context.Context, q querier, e todolist.Entry) (todolist.Entry, error) {
	res, err := q.ExecContext(ctx,
		"INSERT INTO entries (description, list_id) VALUES (?, ?)", e.Description, e.ListID)
	if err != nil {
		return todolist.Entry{}, err
	}
	e.ID, err = res.LastInsertId()
	if err != nil {
		return todolist.Entry{}, fmt.Errorf("reading entry id: %w", err)
	}
	return e, nil
}
