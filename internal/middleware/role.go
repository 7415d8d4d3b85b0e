package middleware // middleware provides shared request processing for handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// RequireRole returns a middleware function that enforces that the
// authenticated user has one of the specified roles. The roles accepted
// should correspond to the values stored in the JWT's "role" claim. If
// the user's role is not in the allowed set, the request is aborted with
// a 403 Forbidden response. It assumes a previous middleware has
// extracted the role into the context under the key "role".
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v := c.Get("role")
			role, ok := v.(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireLevel returns a middleware that enforces a minimum admin
// permission level. It reads the "level" claim injected by JWTAuth;
// requests from tokens without a level claim, or below the minimum, are
// rejected with 403. Customer tokens never carry a level claim, so this
// also implicitly restricts a route to admins.
func RequireLevel(min int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if LevelFrom(c) < min {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// LevelFrom extracts the admin level from the request context. JWT
// numeric claims decode as float64; string values are parsed for
// robustness. Zero means no usable level claim is present.
func LevelFrom(c echo.Context) int {
	switch v := c.Get("level").(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}
