// Package router wires the HTTP endpoints to their handlers and
// middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/anveshk/classroom-seating/internal/handler"
	"github.com/anveshk/classroom-seating/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the login endpoint under /v1/auth.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
}

// RegisterAdmin registers the school-administration API.  Read endpoints
// sit behind the response cache; every mutating endpoint requires a valid
// access token, and the shuffle run additionally passes through the rate
// limiter because it rewrites every seating plan in one request.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string, cache, limiter echo.MiddlewareFunc) {
	reads := e.Group("/v1", cache)
	reads.GET("/assignments", h.ListAssignments)
	reads.GET("/seating-plans", h.ListSeatingPlans)
	reads.GET("/students", h.ListStudents)
	reads.GET("/students/:id", h.GetStudent)
	reads.GET("/rooms", h.ListRooms)
	reads.GET("/last-modified", h.LastModified)

	// The export streams CSV straight from the database, so it skips the
	// JSON response cache.
	e.GET("/v1/export/:table", h.ExportTable)

	admin := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	admin.POST("/assignments/sample", h.GenerateSample)
	admin.POST("/assignments/shuffle", h.ShuffleClassrooms, limiter)

	admin.POST("/students", h.CreateStudent)
	admin.POST("/students/import", h.ImportStudents)
	admin.PUT("/students/:id", h.UpdateStudent)
	admin.DELETE("/students/:id", h.DeleteStudent)

	admin.POST("/rooms", h.CreateRoom)
	admin.PUT("/rooms/:id", h.UpdateRoom)
	admin.DELETE("/rooms/:id", h.DeleteRoom)

	admin.DELETE("/seating-plans/:id", h.DeleteSeatingPlan)
	admin.DELETE("/seating-plans", h.ClearSeatingPlans)
}
