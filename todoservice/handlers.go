package todoservice

import (
	"fmt"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/todoitems/api-contract-tests/servicedef"
)

// itemRequest uses pointers so that missing and null properties can be told apart from zero
// values.
type itemRequest struct {
	ID         *int    `json:"id"`
	Name       *string `json:"name"`
	IsComplete *bool   `json:"isComplete"`
}

func (s *Service) listItems(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Items())
}

func (s *Service) getItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	item, found := s.get(id)
	if !found {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Service) createItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationProblem(w, "$", err.Error())
		return
	}
	if field, message, ok := validate(req); !ok {
		writeValidationProblem(w, field, message)
		return
	}
	item := req.toItem()
	created, ok := s.insert(item)
	if !ok {
		writeProblem(w, http.StatusConflict, servicedef.ConflictType, servicedef.ConflictTitle, nil)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("%s/%d", r.URL.Path, created.ID))
	writeJSON(w, http.StatusCreated, created)
}

func (s *Service) updateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationProblem(w, "$", err.Error())
		return
	}
	if field, message, ok := validate(req); !ok {
		writeValidationProblem(w, field, message)
		return
	}
	if req.ID != nil && *req.ID != id {
		writeValidationProblem(w, "id", "The id in the body does not match the id in the URL.")
		return
	}
	item := req.toItem()
	item.ID = id
	if !s.replace(item) {
		writeNotFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if !s.remove(id) {
		writeNotFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeValidationProblem(w, "id", fmt.Sprintf("The value '%s' is not valid.", raw))
		return 0, false
	}
	return id, true
}

func validate(req itemRequest) (field, message string, ok bool) {
	switch {
	case req.ID != nil && *req.ID <= 0:
		return "id", "The id must be a positive number.", false
	case req.Name == nil || *req.Name == "":
		return "name", "The name field is required.", false
	case utf8.RuneCountInString(*req.Name) > MaxNameLength:
		return "name", fmt.Sprintf("The name must be at most %d characters long.", MaxNameLength), false
	}
	return "", "", true
}

func (req itemRequest) toItem() servicedef.TodoItem {
	var item servicedef.TodoItem
	if req.ID != nil {
		item.ID = *req.ID
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.IsComplete != nil {
		item.IsComplete = *req.IsComplete
	}
	return item
}
