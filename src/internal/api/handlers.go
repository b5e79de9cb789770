package api

import (
	"github.com/maksimkurb/keen-menu/src/internal/menu"
)

// Handler serves the menu endpoints on top of a store.
type Handler struct {
	store        *menu.Store
	mergeUpdates bool
}

// NewHandler creates a handler. With mergeUpdates PUT keeps the attributes
// that are missing from the request body instead of dropping them.
func NewHandler(store *menu.Store, mergeUpdates bool) *Handler {
	return &Handler{
		store:        store,
		mergeUpdates: mergeUpdates,
	}
}
