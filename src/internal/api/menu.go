package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/maksimkurb/keen-menu/src/internal/menu"
)

const deletedMessage = "Menu item deleted"

// ListMenu returns all menu items.
// GET /api/menu
func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

// GetMenuItem returns a specific menu item by id.
// GET /api/menu/{id}
func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeStoreError(w, menu.ErrItemNotFound)
		return
	}

	item, err := h.store.Get(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// CreateMenuItem appends a new menu item. The body has passed the create rules.
// POST /api/menu
func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	fields, ok := fieldsFromContext(r.Context())
	if !ok {
		WriteInternalError(w, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, h.store.Create(fields))
}

// UpdateMenuItem replaces an existing menu item. The body has passed the update rules.
// PUT /api/menu/{id}
func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	fields, ok := fieldsFromContext(r.Context())
	if !ok {
		WriteInternalError(w, "Internal server error")
		return
	}

	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeStoreError(w, menu.ErrItemNotFound)
		return
	}

	var (
		item menu.MenuItem
		err  error
	)
	if h.mergeUpdates {
		item, err = h.store.Merge(id, fields)
	} else {
		item, err = h.store.Replace(id, fields)
	}
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// DeleteMenuItem removes a menu item.
// DELETE /api/menu/{id}
func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeStoreError(w, menu.ErrItemNotFound)
		return
	}

	item, err := h.store.Delete(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DeleteResponse{Message: deletedMessage, Item: item})
}

// parseID reads a leading, optionally signed, integer and ignores the rest,
// so "12abc" is 12. Values without leading digits match no item.
func parseID(raw string) (int, bool) {
	s := strings.TrimLeft(raw, " \t\n\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	id, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return id, true
}
