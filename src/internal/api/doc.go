// Package api provides the REST API for the restaurant menu.
//
// Endpoints:
//   - GET    /                endpoint overview
//   - GET    /api/menu        list all menu items
//   - GET    /api/menu/{id}   get one item
//   - POST   /api/menu        create an item
//   - PUT    /api/menu/{id}   replace (or merge, see config) an item
//   - DELETE /api/menu/{id}   delete an item
//   - GET    /health          liveness probe
//   - GET    /metrics         Prometheus metrics (optional)
//
// # Request Pipeline
//
// Every request passes Recovery, RequestID, RequestLogger and Metrics.
// POST and PUT on /api/menu additionally pass ValidateBody, which rejects the
// request before the handler runs when a field rule fails.
//
// # Response Format
//
// Successful responses are the bare resource, without an envelope.
// Errors use a flat object:
//
//	{"error": "Menu item not found"}
//
// Validation failures list one message per failed rule, in rule order:
//
//	{
//	  "error": "Validation failed",
//	  "messages": ["Price must be a number greater than 0."]
//	}
package api
