package todolist

import (
	"fmt"
	"unicode/utf8"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

// MaxDescriptionLength is the longest description an Entry may carry,
// counted in characters (Unicode code points).
const MaxDescriptionLength = 16000

// Entry is a single to-do item. ListID is a back-reference to the owning
// List and is non-zero once the entry has been persisted.
type Entry struct {
	ID          int64
	Description string
	ListID      int64
}

// Validate checks business rules for the Entry.
// Returns a *domain.ValidationError with per-field details, or nil.
func (e *Entry) Validate() error {
	if fields := e.validateFields(); len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (e *Entry) validateFields() map[string]string {
	fields := make(map[string]string)

	if e.Description == "" {
		fields["description"] = domain.MsgRequired
	} else if n := utf8.RuneCountInString(e.Description); n > MaxDescriptionLength {
		fields["description"] = fmt.Sprintf("must be at most %d characters, got %d", MaxDescriptionLength, n)
	}

	return fields
}
