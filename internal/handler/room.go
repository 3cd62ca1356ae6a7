package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/anveshk/classroom-seating/internal/model"
	"github.com/anveshk/classroom-seating/internal/repository"
)

// ListRooms handles GET /v1/rooms.
func (h *AdminHandler) ListRooms(c echo.Context) error {
	rooms, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if rooms == nil {
		rooms = []model.Room{}
	}
	return c.JSON(http.StatusOK, rooms)
}

type roomBody struct {
	Number   string `json:"number"`
	Building string `json:"building"`
	Capacity int    `json:"capacity"`
}

func (b *roomBody) validate() string {
	b.Number = strings.TrimSpace(b.Number)
	b.Building = strings.TrimSpace(b.Building)
	if b.Number == "" || b.Building == "" {
		return "number and building are required"
	}
	if b.Capacity <= 0 {
		return "capacity must be greater than zero"
	}
	return ""
}

// CreateRoom handles POST /v1/rooms.  A room is identified by its number
// within a building; creating the same pair twice is a conflict.
func (h *AdminHandler) CreateRoom(c echo.Context) error {
	var body roomBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx := c.Request().Context()
	if _, err := h.Rooms.GetByNumberAndBuilding(ctx, body.Number, body.Building); err == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "room with this number and building already exists"})
	} else if !errors.Is(err, repository.ErrRoomNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	room := &model.Room{Number: body.Number, Building: body.Building, Capacity: body.Capacity}
	if err := h.Rooms.Create(ctx, room); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room with this number and building already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create room"})
	}
	h.Tracker.Touch("rooms")
	h.invalidate(c)
	return c.JSON(http.StatusCreated, room)
}

// UpdateRoom handles PUT /v1/rooms/:id.
func (h *AdminHandler) UpdateRoom(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body roomBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	room := &model.Room{ID: id, Number: body.Number, Building: body.Building, Capacity: body.Capacity}
	if err := h.Rooms.Update(c.Request().Context(), room); err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		case errors.Is(err, repository.ErrDuplicate):
			return c.JSON(http.StatusConflict, echo.Map{"error": "room with this number and building already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update room"})
	}
	h.Tracker.Touch("rooms")
	h.invalidate(c)
	return c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /v1/rooms/:id.
func (h *AdminHandler) DeleteRoom(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Rooms.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete room"})
	}
	h.Tracker.Touch("rooms")
	h.invalidate(c)
	return c.JSON(http.StatusOK, echo.Map{"message": "room deleted"})
}
