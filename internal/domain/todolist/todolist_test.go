package todolist

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

// requireValidationField asserts err wraps domain.ErrValidation and the
// resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestEntry_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		entry     Entry
		wantErr   bool
		wantField string
	}{
		{
			name:  "valid description passes",
			entry: Entry{Description: "milk"},
		},
		{
			name:  "description at the limit passes",
			entry: Entry{Description: strings.Repeat("a", MaxDescriptionLength)},
		},
		{
			name:  "multibyte description counted in characters",
			entry: Entry{Description: strings.Repeat("é", MaxDescriptionLength)},
		},
		{
			name:      "description over the limit fails",
			entry:     Entry{Description: strings.Repeat("a", MaxDescriptionLength+1)},
			wantErr:   true,
			wantField: "description",
		},
		{
			name:      "empty description fails",
			entry:     Entry{Description: ""},
			wantErr:   true,
			wantField: "description",
		},
		{
			name:  "whitespace-only description passes",
			entry: Entry{Description: " \t "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.entry.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestList_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid list with entries passes", func(t *testing.T) {
		t.Parallel()
		l := List{Name: "groceries", Entries: []Entry{{Description: "milk"}, {Description: "eggs"}}}
		if err := l.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("empty name fails", func(t *testing.T) {
		t.Parallel()
		l := List{Name: ""}
		requireValidationField(t, l.Validate(), "name")
	})

	t.Run("whitespace-only name passes", func(t *testing.T) {
		t.Parallel()
		l := List{Name: "  "}
		if err := l.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("invalid embedded entry reported by index", func(t *testing.T) {
		t.Parallel()
		l := List{Name: "groceries", Entries: []Entry{
			{Description: "milk"},
			{Description: strings.Repeat("x", MaxDescriptionLength+1)},
		}}
		requireValidationField(t, l.Validate(), "entries[1].description")
	})
}

func TestList_Adopt(t *testing.T) {
	t.Parallel()

	l := List{ID: 42, Name: "groceries", Entries: []Entry{{Description: "milk"}, {Description: "eggs", ListID: 7}}}
	l.Adopt()

	for i, e := range l.Entries {
		if e.ListID != 42 {
			t.Errorf("Entries[%d].ListID = %d, want 42", i, e.ListID)
		}
	}
}

func TestList_Owns(t *testing.T) {
	t.Parallel()

	// Large identifiers must compare by value.
	const big = int64(1) << 40

	l := List{ID: big}
	if !l.Owns(&Entry{ListID: big}) {
		t.Error("Owns() = false for entry with same large ListID, want true")
	}
	if l.Owns(&Entry{ListID: big + 1}) {
		t.Error("Owns() = true for entry of a different list, want false")
	}
}
