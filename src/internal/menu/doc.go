// Package menu holds the menu item model, the field rules applied to
// incoming payloads and the in-memory store that owns the collection.
//
// The package knows nothing about HTTP: rules work on a decoded JSON object
// (map[string]any) and return an ordered list of violations, the store works
// on validated Fields.
package menu
