package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// UpdateTracker records the last-modified timestamp per entity type.  It
// is owned by the web layer and updated by an explicit Touch call after
// each mutating operation; nothing reaches it through ambient imports.
// The admin UI polls it to decide when to refresh tables.
type UpdateTracker struct {
	mu    sync.RWMutex
	times map[string]time.Time
}

// NewUpdateTracker returns an empty tracker.
func NewUpdateTracker() *UpdateTracker {
	return &UpdateTracker{times: make(map[string]time.Time)}
}

// Touch records the current time for the given entity type.
func (t *UpdateTracker) Touch(entity string) {
	t.mu.Lock()
	t.times[entity] = time.Now().UTC()
	t.mu.Unlock()
}

// Snapshot returns a copy of every recorded timestamp in RFC3339 form.
func (t *UpdateTracker) Snapshot() map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]string, len(t.times))
	for k, v := range t.times {
		out[k] = v.Format(time.RFC3339)
	}
	return out
}

// LastModified handles GET /v1/last-modified.
func (h *AdminHandler) LastModified(c echo.Context) error {
	body := echo.Map{"timestamp": time.Now().UTC().Format(time.RFC3339)}
	for k, v := range h.Tracker.Snapshot() {
		body[k] = v
	}
	return c.JSON(http.StatusOK, body)
}
