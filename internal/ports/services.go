package ports

import (
	"context"

	"github.com/jsamuelsen11/todolist-service/internal/domain/todolist"
)

// TodoListService defines the service port for to-do list operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Failures wrap the domain sentinel errors so the boundary can map them to
// status codes.
type TodoListService interface {
	// ListLists returns all lists with their entries.
	ListLists(ctx context.Context) ([]todolist.List, error)

	// ListEntries returns the entries of a list.
	// Returns domain.ErrNotFound if the list does not exist.
	ListEntries(ctx context.Context, listID int64) ([]todolist.Entry, error)

	// CreateList stores a new list together with its embedded entries.
	// Returns domain.ErrValidation if the list fails validation and
	// domain.ErrConflict if the name is taken or the write violates integrity.
	CreateList(ctx context.Context, list *todolist.List) (*todolist.List, error)

	// CreateEntry stores a new entry under an existing list.
	// Returns domain.ErrNotFound if the list does not exist.
	CreateEntry(ctx context.Context, listID int64, entry *todolist.Entry) (*todolist.Entry, error)

	// DeleteList deletes a list and its entries, returning the list as it
	// was before deletion.
	// Returns domain.ErrNotFound if the list does not exist.
	DeleteList(ctx context.Context, listID int64) (*todolist.List, error)

	// DeleteEntry deletes an entry from a list, returning the entry as it
	// was before deletion.
	// Returns domain.ErrNotFound if either the list or the entry does not
	// exist, and domain.ErrConflict if the entry belongs to another list.
	DeleteEntry(ctx context.Context, listID, entryID int64) (*todolist.Entry, error)
}
