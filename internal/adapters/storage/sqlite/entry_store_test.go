package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todolist"
)

func TestEntryStore_SaveAndFind(t *testing.T) {
	t.Parallel()

	lists, entries := openTestStores(t)
	ctx := context.Background()
	list := saveList(t, lists, "groceries")

	saved, err := entries.Save(ctx, &todolist.Entry{Description: "milk", ListID: list.ID})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.ID == 0 || saved.ListID != list.ID || saved.Description != "milk" {
		t.Errorf("Save() = %+v, want milk with id in list %d", saved, list.ID)
	}

	got, found, err := entries.FindByID(ctx, saved.ID)
	if err != nil || !found {
		t.Fatalf("FindByID(%d) = found %v, err %v", saved.ID, found, err)
	}
	if *got != *saved {
		t.Errorf("FindByID(%d) = %+v, want %+v", saved.ID, got, saved)
	}
}

func TestEntryStore_SaveUnknownListConflicts(t *testing.T) {
	t.Parallel()

	_, entries := openTestStores(t)

	_, err := entries.Save(context.Background(), &todolist.Entry{Description: "orphan", ListID: 42})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Save(unknown list) error = %v, want ErrConflict", err)
	}
}

func TestEntryStore_FindAllByListID(t *testing.T) {
	t.Parallel()

	lists, entries := openTestStores(t)
	ctx := context.Background()
	groceries := saveList(t, lists, "groceries", "milk", "eggs")
	saveList(t, lists, "chores", "dishes")
	empty := saveList(t, lists, "empty")

	got, err := entries.FindAllByListID(ctx, groceries.ID)
	if err != nil {
		t.Fatalf("FindAllByListID error = %v", err)
	}
	if len(got) != 2 || got[0].Description != "milk" || got[1].Description != "eggs" {
		t.Errorf("FindAllByListID(groceries) = %+v, want [milk eggs]", got)
	}

	got, err = entries.FindAllByListID(ctx, empty.ID)
	if err != nil {
		t.Fatalf("FindAllByListID(empty) error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("FindAllByListID(empty) = %#v, want empty non-nil slice", got)
	}
}

func TestEntryStore_Delete(t *testing.T) {
	t.Parallel()

	lists, entries := openTestStores(t)
	ctx := context.Background()
	list := saveList(t, lists, "groceries", "milk", "eggs")
	milk := list.Entries[0]

	if err := entries.Delete(ctx, milk.ID); err != nil {
		t.Fatalf("Delete(%d) error = %v", milk.ID, err)
	}
	if err := entries.Delete(ctx, milk.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete(%d) error = %v, want ErrNotFound", milk.ID, err)
	}

	remaining, err := entries.FindAllByListID(ctx, list.ID)
	if err != nil {
		t.Fatalf("FindAllByListID error = %v", err)
	}
	if len(remaining) != 1 || remaining[0].Description != "eggs" {
		t.Errorf("remaining entries = %+v, want [eggs]", remaining)
	}
}

func TestEntryStore_FindByIDMissing(t *testing.T) {
	t.Parallel()

	_, entries := openTestStores(t)

	got, found, err := entries.FindByID(context.Background(), 1<<40)
	if err != nil {
		t.Fatalf("FindByID(missing) error = %v", err)
	}
	if found || got != nil {
		t.Errorf("FindByID(missing) = %+v, %v; want nil, false", got, found)
	}
}
