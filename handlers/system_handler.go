package handlers

import (
	"net/http"
)

// SystemHandler handles system-related endpoints
type SystemHandler struct {
	ping func() error
}

// NewSystemHandler creates a new SystemHandler. ping may be nil when there
// is no database to check.
func NewSystemHandler(ping func() error) *SystemHandler {
	return &SystemHandler{ping: ping}
}

// Health reports whether the service and its database are reachable.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
