package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func parseUintParam(c echo.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(value), nil
}

func userID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}
