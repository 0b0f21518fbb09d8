// api_handlers.go
package main

import (
	"net/http"
	"strconv"

	"learning_journal/pkg/api"
	"learning_journal/pkg/httputil"
	"learning_journal/pkg/logger"
)

// apiListEntriesHandler returns a paginated JSON listing. Supports ?page=N,
// ?pageSize=N and ?tag=label (case-insensitive substring match).
func apiListEntriesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var entries []Entry
	var err error
	if tag := q.Get("tag"); tag != "" {
		entries, err = listByTag(tag)
	} else {
		entries, err = listAll()
	}
	if err != nil {
		logger.Error("Failed to list entries", err)
		httputil.WriteJSONError(w, "Could not load entries", http.StatusInternalServerError)
		return
	}

	pageNumber, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("pageSize"))
	if size <= 0 {
		size = pageSize
	}

	httputil.WriteJSON(w, paginate(entries, pageNumber, size))
}

// apiGetEntryHandler returns a single entry as JSON.
func apiGetEntryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := entryIDFromPath(r)
	if err != nil {
		httputil.WriteJSONError(w, "Invalid entry id", http.StatusBadRequest)
		return
	}

	entry, err := getEntryByID(id)
	if err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteJSON(w, entry)
}

// apiCreateEntryHandler creates an entry for the authenticated user.
func apiCreateEntryHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok || user == nil {
		httputil.WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	var req api.CreateEntryRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := createEntry(user, req.Title, req.Content, req.Resources, req.TimeSpent, req.Tag)
	if err != nil {
		httputil.WriteAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	httputil.WriteJSON(w, entry)
}

// apiUpdateEntryHandler updates an entry owned by the authenticated user.
func apiUpdateEntryHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok || user == nil {
		httputil.WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	id, err := entryIDFromPath(r)
	if err != nil {
		httputil.WriteJSONError(w, "Invalid entry id", http.StatusBadRequest)
		return
	}

	var req api.UpdateEntryRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := updateEntry(id, user, req.Title, req.Content, req.Resources, req.TimeSpent, req.Tag)
	if err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteJSON(w, entry)
}

// apiDeleteEntryHandler deletes an entry owned by the authenticated user.
func apiDeleteEntryHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok || user == nil {
		httputil.WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	id, err := entryIDFromPath(r)
	if err != nil {
		httputil.WriteJSONError(w, "Invalid entry id", http.StatusBadRequest)
		return
	}

	if err := deleteEntry(id, user); err != nil {
		httputil.WriteAppError(w, err)
		return
	}
	httputil.WriteJSONSuccess(w, "Entry deleted", nil)
}
