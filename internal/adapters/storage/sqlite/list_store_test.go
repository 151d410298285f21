package sqlite_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todolist"
)

func TestListStore_SaveAssignsIDs(t *testing.T) {
	t.Parallel()

	lists, _ := openTestStores(t)

	saved := saveList(t, lists, "groceries", "milk", "eggs")

	if saved.ID == 0 {
		t.Fatal("saved list ID = 0, want assigned id")
	}
	if len(saved.Entries) != 2 {
		t.Fatalf("saved entries = %d, want 2", len(saved.Entries))
	}
	for i, e := range saved.Entries {
		if e.ID == 0 {
			t.Errorf("entries[%d].ID = 0, want assigned id", i)
		}
		if e.ListID != saved.ID {
			t.Errorf("entries[%d].ListID = %d, want %d", i, e.ListID, saved.ID)
		}
	}
}

func TestListStore_SaveIgnoresIncomingListIDs(t *testing.T) {
	t.Parallel()

	lists, _ := openTestStores(t)

	saved, err := lists.Save(context.Background(), &todolist.List{
		Name:    "chores",
		Entries: []todolist.Entry{{Description: "dishes", ListID: 999}},
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.Entries[0].ListID != saved.ID {
		t.Errorf("entry ListID = %d, want %d", saved.Entries[0].ListID, saved.ID)
	}
}

func TestListStore_SaveDuplicateNameConflicts(t *testing.T) {
	t.Parallel()

	lists, _ := openTestStores(t)
	ctx := context.Background()
	saveList(t, lists, "groceries")

	_, err := lists.Save(ctx, &todolist.List{
		Name:    "groceries",
		Entries: []todolist.Entry{{Description: "bread"}},
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("Save(duplicate) error = %v, want ErrConflict", err)
	}

	all, err := lists.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 1 || len(all[0].Entries) != 0 {
		t.Errorf("after conflict: %d lists, want 1 with no entries; got %+v", len(all), all)
	}
}

func TestListStore_SaveRollsBackOnInvalidEntry(t *testing.T) {
	t.Parallel()

	lists, _ := openTestStores(t)
	ctx := context.Background()

	_, err := lists.Save(ctx, &todolist.List{
		Name: "work",
		Entries: []todolist.Entry{
			{Description: "ok"},
			{Description: strings.Repeat("x", todolist.MaxDescriptionLength+1)},
		},
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("Save() error = %v, want ErrConflict from the length check", err)
	}

	all, err := lists.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 0 {
		t.Errorf("FindAll() = %d lists, want 0 after rollback", len(all))
	}
}

func TestListStore_SaveEmptyTextChecks(t *testing.T) {
	t.Parallel()

	lists, _ := openTestStores(t)
	ctx := context.Background()

	saved := saveList(t, lists, " ", "\t")
	if saved.Name != " " || saved.Entries[0].Description != "\t" {
		t.Errorf("saved = %+v, want whitespace text stored verbatim", saved)
	}

	if _, err := lists.Save(ctx, &todolist.List{Name: ""}); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Save(empty name) error = %v, want ErrConflict", err)
	}
	_, err := lists.Save(ctx, &todolist.List{Name: "chores", Entries: []todolist.Entry{{Description: ""}}})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Save(empty description) error = %v, want ErrConflict", err)
	}
}

func TestListStore_FindAll(t *testing.T) {
	t.Parallel()

	lists, _ := openTestStores(t)
	ctx := context.Background()

	empty, err := lists.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() on empty store error = %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("FindAll() on empty store = %#v, want empty non-nil slice", empty)
	}

	a := saveList(t, lists, "a", "a1", "a2")
	b := saveList(t, lists, "b")

	all, err := lists.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("FindAll() = %d lists, want 2", len(all))
	}
	if all[0].ID != a.ID || all[1].ID != b.ID {
		t.Errorf("FindAll() ids = [%d %d], want [%d %d]", all[0].ID, all[1].ID, a.ID, b.ID)
	}
	if len(all[0].Entries) != 2 || all[0].Entries[0].Description != "a1" {
		t.Errorf("list a entries = %+v, want [a1 a2]", all[0].Entries)
	}
	if all[1].Entries == nil {
		t.Error("list b entries = nil, want empty slice")
	}
}

func TestListStore_FindByID(t *testing.T) {
	t.Parallel()

	lists, _ := openTestStores(t)
	ctx := context.Background()
	saved := saveList(t, lists, "groceries", "milk")

	got, found, err := lists.FindByID(ctx, saved.ID)
	if err != nil || !found {
		t.Fatalf("FindByID(%d) = found %v, err %v; want found", saved.ID, found, err)
	}
	if got.Name != "groceries" || len(got.Entries) != 1 || got.Entries[0].Description != "milk" {
		t.Errorf("FindByID(%d) = %+v, want groceries with milk", saved.ID, got)
	}

	got, found, err = lists.FindByID(ctx, saved.ID+1)
	if err != nil {
		t.Fatalf("FindByID(missing) error = %v, want nil", err)
	}
	if found || got != nil {
		t.Errorf("FindByID(missing) = %+v, %v; want nil, false", got, found)
	}
}

func TestListStore_ExistsByID(t *testing.T) {
	t.Parallel()

	lists, _ := openTestStores(t)
	ctx := context.Background()
	saved := saveList(t, lists, "groceries")

	tests := []struct {
		name string
		id   int64
		want bool
	}{
		{name: "existing", id: saved.ID, want: true},
		{name: "missing", id: saved.ID + 1, want: false},
		{name: "large id", id: 1 << 40, want: false},
	}

	for _, tt := range tests {
		got, err := lists.ExistsByID(ctx, tt.id)
		if err != nil {
			t.Fatalf("%s: ExistsByID(%d) error = %v", tt.name, tt.id, err)
		}
		if got != tt.want {
			t.Errorf("%s: ExistsByID(%d) = %v, want %v", tt.name, tt.id, got, tt.want)
		}
	}
}

func TestListStore_DeleteCascadesToEntries(t *testing.T) {
	t.Parallel()

	lists, entries := openTestStores(t)
	ctx := context.Background()
	saved := saveList(t, lists, "groceries", "milk", "eggs")
	other := saveList(t, lists, "chores", "dishes")

	if err := lists.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("Delete(%d) error = %v", saved.ID, err)
	}

	for _, e := range saved.Entries {
		if _, found, err := entries.FindByID(ctx, e.ID); err != nil || found {
			t.Errorf("entry %d after list delete: found %v, err %v; want gone", e.ID, found, err)
		}
	}
	if _, found, _ := entries.FindByID(ctx, other.Entries[0].ID); !found {
		t.Error("entry of another list was removed by the cascade")
	}
}

func TestListStore_DeleteMissing(t *testing.T) {
	t.Parallel()

	lists, _ := openTestStores(t)
	ctx := context.Background()
	saved := saveList(t, lists, "groceries")

	if err := lists.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("first Delete error = %v", err)
	}
	if err := lists.Delete(ctx, saved.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete error = %v, want ErrNotFound", err)
	}
}

func TestListStore_IDsNotReusedAfterDelete(t *testing.T) {
	t.Parallel()

	lists, _ := openTestStores(t)
	ctx := context.Background()
	first := saveList(t, lists, "first")

	if err := lists.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete error = %v", err)
	}
	second := saveList(t, lists, "second")

	if second.ID == first.ID {
		t.Errorf("new list reused deleted id %d", first.ID)
	}
}
