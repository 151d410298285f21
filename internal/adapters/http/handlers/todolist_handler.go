// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// URL parameter names shared with the router.
const (
	ParamListID  = "listId"
	ParamEntryID = "entryId"
)

// TodoListHandler handles HTTP requests for lists and their entries.
type TodoListHandler struct {
	svc ports.TodoListService
}

// NewTodoListHandler creates a new TodoListHandler with the given service port.
func NewTodoListHandler(svc ports.TodoListService) *TodoListHandler {
	return &TodoListHandler{svc: svc}
}

// ListLists handles GET /api.
func (h *TodoListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListLists(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponses(lists))
}

// ListEntries handles GET /api/{listId}.
func (h *TodoListHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	listID, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), listID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToEntryResponses(entries))
}

// CreateList handles POST /api.
func (h *TodoListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateList(r.Context(), req.ToList())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToListResponse(created))
}

// CreateEntry handles POST /api/{listId}.
func (h *TodoListHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	listID, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateEntry(r.Context(), listID, req.ToEntry())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToEntryResponse(created))
}

// DeleteList handles DELETE /api/{listId}. The response carries the list
// as it was before deletion.
func (h *TodoListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	listID, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	deleted, err := h.svc.DeleteList(r.Context(), listID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(deleted))
}

// DeleteEntry handles DELETE /api/{entryId}/{listId}.
func (h *TodoListHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID, err := parseID(r, ParamEntryID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	listID, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	deleted, err := h.svc.DeleteEntry(r.Context(), listID, entryID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToEntryResponse(deleted))
}
