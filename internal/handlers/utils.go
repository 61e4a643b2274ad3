package handlers

import (
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var errInvalidID = stderrors.New("id must be a UUID")

// parseIDParam reads the :id path parameter
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errInvalidID
	}
	return id, nil
}

// attachment marks the response as a file download
func attachment(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}
