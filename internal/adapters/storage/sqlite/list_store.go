package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todolist"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

var _ ports.ListStore = (*ListStore)(nil)

// ListStore persists lists together with the entries they own.
type ListStore struct {
	db *DB
}

// NewListStore returns a ListStore backed by db.
func NewListStore(db *DB) *ListStore {
	return &ListStore{db: db}
}

// FindAll returns every list ordered by id, each with its entries.
func (s *ListStore) FindAll(ctx context.Context) ([]todolist.List, error) {
	var lists []todolist.List
	err := s.db.run(ctx, "lists.select_all", func(ctx context.Context) error {
		return s.db.withTx(ctx, s.db.read, func(tx *sql.Tx) error {
			var err error
			lists, err = selectLists(ctx, tx)
			if err != nil {
				return err
			}

			entries, err := selectEntries(ctx, tx, "SELECT id, description, list_id FROM entries ORDER BY id")
			if err != nil {
				return err
			}

			byList := make(map[int64]int, len(lists))
			for i := range lists {
				byList[lists[i].ID] = i
			}
			for _, e := range entries {
				if i, ok := byList[e.ListID]; ok {
					lists[i].Entries = append(lists[i].Entries, e)
				}
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("finding all lists: %w", err)
	}
	return lists, nil
}

// FindByID returns the list with the given id and its entries. found is
// false when no such list exists.
func (s *ListStore) FindByID(ctx context.Context, id int64) (*todolist.List, bool, error) {
	var list *todolist.List
	err := s.db.run(ctx, "lists.select", func(ctx context.Context) error {
		return s.db.withTx(ctx, s.db.read, func(tx *sql.Tx) error {
			l := todolist.List{ID: id, Entries: []todolist.Entry{}}
			err := tx.QueryRowContext(ctx, "SELECT name FROM lists WHERE id = ?", id).Scan(&l.Name)
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("selecting list: %w", err)
			}

			l.Entries, err = selectEntries(ctx, tx,
				"SELECT id, description, list_id FROM entries WHERE list_id = ? ORDER BY id", id)
			if err != nil {
				return err
			}
			list = &l
			return nil
		})
	})
	if err != nil {
		return nil, false, fmt.Errorf("finding list %d: %w", id, err)
	}
	return list, list != nil, nil
}

// ExistsByID reports whether a list with the given id exists.
func (s *ListStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.run(ctx, "lists.exists", func(ctx context.Context) error {
		return s.db.read.QueryRowContext(ctx,
			"SELECT EXISTS (SELECT 1 FROM lists WHERE id = ?)", id).Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("checking list %d: %w", id, err)
	}
	return exists, nil
}

// Save inserts the list and all of its entries in one transaction and returns
// the stored list with ids assigned. Entries are stored against the new list
// regardless of their ListID. A name that is already taken, or any other
// constraint violation, yields domain.ErrConflict and stores nothing.
func (s *ListStore) Save(ctx context.Context, list *todolist.List) (*todolist.List, error) {
	var saved todolist.List
	err := s.db.run(ctx, "lists.insert", func(ctx context.Context) error {
		return s.db.withTx(ctx, s.db.write, func(tx *sql.Tx) error {
			res, err := tx.ExecContext(ctx, "INSERT INTO lists (name) VALUES (?)", list.Name)
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: a list named %q already exists", domain.ErrConflict, list.Name)
			}
			if err != nil {
				return conflictf(err, "list %q violates a storage constraint", list.Name)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("reading list id: %w", err)
			}

			saved = todolist.List{ID: id, Name: list.Name, Entries: make([]todolist.Entry, 0, len(list.Entries))}
			for i, e := range list.Entries {
				e.ListID = id
				stored, err := insertEntry(ctx, tx, e)
				if err != nil {
					return conflictf(err, "entries[%d] violates a storage constraint", i)
				}
				saved.Entries = append(saved.Entries, stored)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("saving list: %w", err)
	}
	return &saved, nil
}

// Delete removes the list; its entries go with it through ON DELETE CASCADE
// in the same statement. Deleting a missing list yields domain.ErrNotFound.
func (s *ListStore) Delete(ctx context.Context, id int64) error {
	err := s.db.run(ctx, "lists.delete", func(ctx context.Context) error {
		res, err := s.db.write.ExecContext(ctx, "DELETE FROM lists WHERE id = ?", id)
		if err != nil {
			return err
		}
		return requireAffected(res, "list", id)
	})
	if err != nil {
		return fmt.Errorf("deleting list %d: %w", id, err)
	}
	return nil
}

func selectLists(ctx context.Context, tx *sql.Tx) ([]todolist.List, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id, name FROM lists ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("selecting lists: %w", err)
	}
	defer rows.Close()

	lists := []todolist.List{}
	for rows.Next() {
		l := todolist.List{Entries: []todolist.Entry{}}
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, fmt.Errorf("scanning list: %w", err)
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

// requireAffected turns a zero-row mutation into domain.ErrNotFound.
func requireAffected(res sql.Result, kind string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %d", domain.ErrNotFound, kind, id)
	}
	return nil
}
