// Package handler contains the HTTP handlers.  Handlers stay thin: they
// parse and validate the request, call a repository or the assignment
// engine, and translate sentinel errors into status codes.
package handler

import (
	"database/sql"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/anveshk/classroom-seating/internal/assign"
	"github.com/anveshk/classroom-seating/internal/repository"
)

// AdminHandler bundles the collaborators behind the school-administration
// endpoints.  Invalidate, when set, drops the Redis response cache after
// a mutation; it is nil when caching is disabled.  DB is only used by the
// generic CSV export, everything else goes through a repository.
type AdminHandler struct {
	DB         *sql.DB
	Students   *repository.StudentRepo
	Rooms      *repository.RoomRepo
	Plans      *repository.SeatingPlanRepo
	Engine     *assign.Engine
	Tracker    *UpdateTracker
	AMQPURL    string
	Invalidate func(echo.Context)
}

func (h *AdminHandler) invalidate(c echo.Context) {
	if h.Invalidate != nil {
		h.Invalidate(c)
	}
}

// pathID parses the numeric :id path parameter; zero is never a valid ID.
func pathID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
