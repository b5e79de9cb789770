package api

import "github.com/maksimkurb/keen-menu/src/internal/menu"

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is returned with 400 when field rules fail.
type ValidationErrorResponse struct {
	Error    string   `json:"error"`
	Messages []string `json:"messages"`
}

// DeleteResponse is returned after an item has been removed.
type DeleteResponse struct {
	Message string        `json:"message"`
	Item    menu.MenuItem `json:"item"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// RootResponse describes the available endpoints.
type RootResponse struct {
	Message   string        `json:"message"`
	Endpoints EndpointsInfo `json:"endpoints"`
}

// EndpointsInfo keeps endpoint descriptions in a fixed order.
type EndpointsInfo struct {
	List   string `json:"GET /menu"`
	Get    string `json:"GET /menu/:id"`
	Create string `json:"POST /menu"`
	Update string `json:"PUT /menu/:id"`
	Delete string `json:"DELETE /menu/:id"`
}
