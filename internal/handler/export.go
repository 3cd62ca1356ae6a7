package handler

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// exportableTables is the whitelist for the CSV export endpoint.  The
// table name is interpolated into SQL, so nothing outside this set may
// ever reach the query.
var exportableTables = map[string]bool{
	"students":      true,
	"rooms":         true,
	"seating_plans": true,
}

// ExportTable handles GET /v1/export/:table and streams the raw table
// contents as a CSV download.  Columns come straight from the result set
// so the export always matches the live schema.
func (h *AdminHandler) ExportTable(c echo.Context) error {
	table := c.Param("table")
	if !exportableTables[table] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table name"})
	}

	rows, err := h.DB.QueryContext(c.Request().Context(), "SELECT * FROM "+table)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.csv"`, table))
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	if err := w.Write(cols); err != nil {
		return err
	}

	raw := make([]sql.RawBytes, len(cols))
	ptrs := make([]any, len(cols))
	for i := range raw {
		ptrs[i] = &raw[i]
	}
	record := make([]string, len(cols))
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		for i, b := range raw {
			record[i] = string(b) // NULL becomes an empty field
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
