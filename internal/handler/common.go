package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

var errNoIdentity = errors.New("no authenticated identity in context")

// getUserID extracts the authenticated subject from the request context.
// JWT numeric claims decode as float64; some clients encode the subject
// as a string, so both are accepted.
func getUserID(c echo.Context) (uint64, error) {
	switch v := c.Get("user_id").(type) {
	case float64:
		if v > 0 {
			return uint64(v), nil
		}
	case uint64:
		if v > 0 {
			return v, nil
		}
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil && n > 0 {
			return n, nil
		}
	}
	return 0, errNoIdentity
}

// parseID parses a positive numeric path parameter.
func parseID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
