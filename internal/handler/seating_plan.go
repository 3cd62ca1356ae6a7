package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anveshk/classroom-seating/internal/model"
	"github.com/anveshk/classroom-seating/internal/repository"
)

// ListSeatingPlans handles GET /v1/seating-plans and returns every stored
// plan, newest first.
func (h *AdminHandler) ListSeatingPlans(c echo.Context) error {
	plans, err := h.Plans.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if plans == nil {
		plans = []model.SeatingPlan{}
	}
	return c.JSON(http.StatusOK, plans)
}

// DeleteSeatingPlan handles DELETE /v1/seating-plans/:id.
func (h *AdminHandler) DeleteSeatingPlan(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Plans.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seating plan not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete seating plan"})
	}
	h.Tracker.Touch("seatingPlans")
	h.invalidate(c)
	return c.JSON(http.StatusOK, echo.Map{"message": "seating plan deleted"})
}

// ClearSeatingPlans handles DELETE /v1/seating-plans and removes every
// stored plan.
func (h *AdminHandler) ClearSeatingPlans(c echo.Context) error {
	if err := h.Plans.ClearSeatingPlans(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not clear seating plans"})
	}
	h.Tracker.Touch("seatingPlans")
	h.invalidate(c)
	return c.JSON(http.StatusOK, echo.Map{"message": "all seating plans cleared"})
}
