// Package todolist holds the to-do list aggregate: a named List that owns
// its Entry items. An Entry refers back to its List by identifier only.
package todolist

import (
	"fmt"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

// List is a named collection of entries. Name is unique across all lists;
// the store enforces that, not Validate.
type List struct {
	ID      int64
	Name    string
	Entries []Entry
}

// Validate checks business rules for the List and every embedded Entry.
// Entry failures are reported under indexed keys such as
// "entries[1].description". Returns a *domain.ValidationError or nil.
func (l *List) Validate() error {
	fields := make(map[string]string)

	if l.Name == "" {
		fields["name"] = domain.MsgRequired
	}
	for i := range l.Entries {
		for field, msg := range l.Entries[i].validateFields() {
			fields[fmt.Sprintf("entries[%d].%s", i, field)] = msg
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Adopt points every embedded entry at this list. It is called once the
// list's identity is known so the ListID back-references stay consistent.
func (l *List) Adopt() {
	for i := range l.Entries {
		l.Entries[i].ListID = l.ID
	}
}

// Owns reports whether e belongs to this list. Identifiers are compared by
// value.
func (l *List) Owns(e *Entry) bool {
	return e.ListID == l.ID
}
