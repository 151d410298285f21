// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todolist"
	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

var _ ports.TodoListService = (*TodoListService)(nil)

// TodoListService implements ports.TodoListService on top of the list and
// entry stores. It performs existence and ownership checks and classifies
// failures; it never writes responses.
type TodoListService struct {
	lists   ports.ListStore
	entries ports.EntryStore
	logger  *slog.Logger
}

// NewTodoListService creates a TodoListService. A nil logger discards logs.
func NewTodoListService(lists ports.ListStore, entries ports.EntryStore, logger *slog.Logger) *TodoListService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &TodoListService{
		lists:   lists,
		entries: entries,
		logger:  logger,
	}
}

// ListLists returns every list with its entries, ordered by id.
func (s *TodoListService) ListLists(ctx context.Context) ([]todolist.List, error) {
	s.logger.InfoContext(ctx, "listing lists")

	lists, err := s.lists.FindAll(ctx)
	if err != nil {
		s.logFailure(ctx, "failed to list lists", "ListLists", err)
		return nil, err
	}
	return lists, nil
}

// ListEntries returns the entries of the given list.
func (s *TodoListService) ListEntries(ctx context.Context, listID int64) ([]todolist.Entry, error) {
	s.logger.InfoContext(ctx, "listing entries", slog.Int64("list_id", listID))

	exists, err := s.lists.ExistsByID(ctx, listID)
	if err == nil && !exists {
		err = listNotFound(listID)
	}
	if err != nil {
		s.logFailure(ctx, "failed to list entries", "ListEntries", err, slog.Int64("list_id", listID))
		return nil, err
	}

	entries, err := s.entries.FindAllByListID(ctx, listID)
	if err != nil {
		s.logFailure(ctx, "failed to list entries", "ListEntries", err, slog.Int64("list_id", listID))
		return nil, err
	}
	return entries, nil
}

// CreateList validates and stores a list with its embedded entries in one
// step. Every returned entry refers back to the new list.
func (s *TodoListService) CreateList(ctx context.Context, list *todolist.List) (*todolist.List, error) {
	s.logger.InfoContext(ctx, "creating list",
		slog.String("name", list.Name),
		slog.Int("entries", len(list.Entries)),
	)

	if err := list.Validate(); err != nil {
		s.logFailure(ctx, "rejected list", "CreateList", err)
		return nil, err
	}

	created, err := s.lists.Save(ctx, list)
	if err != nil {
		s.logFailure(ctx, "failed to create list", "CreateList", err, slog.String("name", list.Name))
		return nil, err
	}
	created.Adopt()

	return created, nil
}

// CreateEntry validates and stores an entry under an existing list.
func (s *TodoListService) CreateEntry(ctx context.Context, listID int64, entry *todolist.Entry) (*todolist.Entry, error) {
	s.logger.InfoContext(ctx, "creating entry", slog.Int64("list_id", listID))

	if err := entry.Validate(); err != nil {
		s.logFailure(ctx, "rejected entry", "CreateEntry", err, slog.Int64("list_id", listID))
		return nil, err
	}

	list, err := s.findList(ctx, listID)
	if err != nil {
		s.logFailure(ctx, "failed to create entry", "CreateEntry", err, slog.Int64("list_id", listID))
		return nil, err
	}

	entry.ListID = list.ID
	created, err := s.entries.Save(ctx, entry)
	if err != nil {
		s.logFailure(ctx, "failed to create entry", "CreateEntry", err, slog.Int64("list_id", listID))
		return nil, err
	}
	return created, nil
}

// DeleteList deletes a list and, with it, all of its entries. It returns the
// list as it was before deletion.
func (s *TodoListService) DeleteList(ctx context.Context, listID int64) (*todolist.List, error) {
	s.logger.InfoContext(ctx, "deleting list", slog.Int64("list_id", listID))

	list, err := s.findList(ctx, listID)
	if err == nil {
		err = s.lists.Delete(ctx, listID)
	}
	if err != nil {
		s.logFailure(ctx, "failed to delete list", "DeleteList", err, slog.Int64("list_id", listID))
		return nil, err
	}
	return list, nil
}

// DeleteEntry deletes an entry of a list and returns it as it was before
// deletion. The list and the entry are resolved independently; ownership is
// checked only once both exist.
func (s *TodoListService) DeleteEntry(ctx context.Context, listID, entryID int64) (*todolist.Entry, error) {
	attrs := []any{slog.Int64("list_id", listID), slog.Int64("entry_id", entryID)}
	s.logger.InfoContext(ctx, "deleting entry", attrs...)

	entry, err := s.deleteEntry(ctx, listID, entryID)
	if err != nil {
		s.logFailure(ctx, "failed to delete entry", "DeleteEntry", err, attrs...)
		return nil, err
	}
	return entry, nil
}

func (s *TodoListService) deleteEntry(ctx context.Context, listID, entryID int64) (*todolist.Entry, error) {
	list, err := s.findList(ctx, listID)
	if err != nil {
		return nil, err
	}

	entry, found, err := s.entries.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: entry %d", domain.ErrNotFound, entryID)
	}

	if !list.Owns(entry) {
		return nil, fmt.Errorf("%w: entry %d does not belong to list %d", domain.ErrConflict, entryID, listID)
	}

	if err := s.entries.Delete(ctx, entryID); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *TodoListService) findList(ctx context.Context, listID int64) (*todolist.List, error) {
	list, found, err := s.lists.FindByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, listNotFound(listID)
	}
	return list, nil
}

func listNotFound(listID int64) error {
	return fmt.Errorf("%w: list %d", domain.ErrNotFound, listID)
}

// logFailure logs expected outcomes (validation, not found, conflict) at
// WARN and everything else at ERROR.
func (s *TodoListService) logFailure(ctx context.Context, msg, operation string, err error, attrs ...any) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) {
		level = slog.LevelWarn
	}

	args := append([]any{slog.String("operation", operation)}, attrs...)
	args = append(args, slog.Any("error", err))
	s.logger.Log(ctx, level, msg, args...)
}
