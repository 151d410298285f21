package ports

import (
	"context"

	"github.com/jsamuelsen11/todolist-service/internal/domain/todolist"
)

// ListStore defines the storage port for the List aggregate.
// Implemented by the storage adapter; called by the application layer.
// Find methods report absence through the found flag, not an error.
type ListStore interface {
	// FindAll returns every list with its entries populated, in storage order.
	FindAll(ctx context.Context) ([]todolist.List, error)

	// FindByID returns the list with its entries populated.
	// found is false when no list has that ID.
	FindByID(ctx context.Context, id int64) (list *todolist.List, found bool, err error)

	// ExistsByID reports whether a list with that ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Save inserts the list and all of its entries in a single transaction
	// and returns the stored list with assigned IDs. Each entry's ListID is
	// set to the new list's ID.
	// Returns domain.ErrConflict on a uniqueness or integrity violation.
	Save(ctx context.Context, list *todolist.List) (*todolist.List, error)

	// Delete removes the list and, atomically, all of its entries.
	// Returns domain.ErrNotFound if the list does not exist.
	Delete(ctx context.Context, id int64) error
}

// EntryStore defines the storage port for Entry records.
type EntryStore interface {
	// FindAllByListID returns the entries whose ListID equals listID.
	FindAllByListID(ctx context.Context, listID int64) ([]todolist.Entry, error)

	// FindByID returns the entry. found is false when no entry has that ID.
	FindByID(ctx context.Context, id int64) (entry *todolist.Entry, found bool, err error)

	// Save inserts the entry and returns it with its assigned ID.
	// Returns domain.ErrConflict on an integrity violation (e.g. the
	// referenced list vanished).
	Save(ctx context.Context, entry *todolist.Entry) (*todolist.Entry, error)

	// Delete removes the entry.
	// Returns domain.ErrNotFound if the entry does not exist.
	Delete(ctx context.Context, id int64) error
}
