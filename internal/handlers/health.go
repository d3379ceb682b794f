package handlers

import "net/http"

// HealthResponse reports that the server is up
// swagger:model HealthResponse
type HealthResponse struct {
	// default: ok
	Status string `json:"status"`
	// default: Server is running
	Message string `json:"message"`
}

// NewHealthHandler returns an HTTP handler for the liveness probe.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router / [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Message: "Server is running"})
	}
}

// NewNotFoundHandler answers unknown routes.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	}
}

// NewMethodNotAllowedHandler answers known routes called with the wrong verb.
func NewMethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}
