package dto

import (
	"github.com/jsamuelsen11/todolist-service/internal/domain/todolist"
)

// CreateListRequest represents the JSON body for creating a list, optionally
// with initial entries.
type CreateListRequest struct {
	Name    string               `json:"name"`
	Entries []CreateEntryRequest `json:"entries,omitempty"`
}

// Validate checks the list name and every embedded entry. Entry failures are
// keyed by position, e.g. "entries[2].description".
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateListRequest) Validate() error {
	return r.ToList().Validate()
}

// ToList maps the request to a domain List.
func (r *CreateListRequest) ToList() *todolist.List {
	list := &todolist.List{
		Name:    r.Name,
		Entries: make([]todolist.Entry, len(r.Entries)),
	}
	for i := range r.Entries {
		list.Entries[i] = *r.Entries[i].ToEntry()
	}
	return list
}

// CreateEntryRequest represents the JSON body for adding an entry to a list.
type CreateEntryRequest struct {
	Description string `json:"description"`
}

// Validate checks that the description is present and at most
// todolist.MaxDescriptionLength characters long.
func (r *CreateEntryRequest) Validate() error {
	return r.ToEntry().Validate()
}

// ToEntry maps the request to a domain Entry. The owning list is set by the
// service.
func (r *CreateEntryRequest) ToEntry() *todolist.Entry {
	return &todolist.Entry{Description: r.Description}
}
