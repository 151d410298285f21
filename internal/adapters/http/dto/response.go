// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/todolist-service/internal/domain/todolist"

// ListResponse represents a list with its entries. Entries is always an
// array, never null.
type ListResponse struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Entries []EntryResponse `json:"entries"`
}

// EntryResponse represents a single entry. The owning list appears as a
// reference carrying only its id.
type EntryResponse struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	List        ListRef `json:"list"`
}

// ListRef identifies a list without embedding it.
type ListRef struct {
	ID int64 `json:"id"`
}

// ToListResponse converts a domain List to its HTTP representation.
func ToListResponse(l *todolist.List) ListResponse {
	return ListResponse{
		ID:      l.ID,
		Name:    l.Name,
		Entries: ToEntryResponses(l.Entries),
	}
}

// ToListResponses converts lists; a nil input yields an empty array.
func ToListResponses(lists []todolist.List) []ListResponse {
	out := make([]ListResponse, len(lists))
	for i := range lists {
		out[i] = ToListResponse(&lists[i])
	}
	return out
}

// ToEntryResponse converts a domain Entry to its HTTP representation.
func ToEntryResponse(e *todolist.Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		Description: e.Description,
		List:        ListRef{ID: e.ListID},
	}
}

// ToEntryResponses converts entries; a nil input yields an empty array.
func ToEntryResponses(entries []todolist.Entry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = ToEntryResponse(&entries[i])
	}
	return out
}
