package api

import "net/http"

// Root describes the available endpoints.
// GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		Message: "Welcome to the Restaurant API",
		Endpoints: EndpointsInfo{
			List:   "Retrieve all menu items",
			Get:    "Retrieve a specific menu item",
			Create: "Add a new menu item",
			Update: "Update an existing menu item",
			Delete: "Remove a menu item",
		},
	})
}

// CheckHealth reports that the process is serving requests.
// GET /health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// MethodNotAllowed handles known paths requested with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, "Cannot "+r.Method+" "+r.URL.Path)
}

// NotFound handles unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteNotFound(w, "Cannot "+r.Method+" "+r.URL.Path)
}
