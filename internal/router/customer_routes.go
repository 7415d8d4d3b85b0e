package router

import (
	"github.com/labstack/echo/v4"

	"github.com/lavou/laundry-reservation/internal/handler"
	"github.com/lavou/laundry-reservation/internal/middleware"
)

// RegisterCustomer registers customer-scoped endpoints under /v1. All
// routes require a valid JWT and the CUSTOMER role. Customers can book
// machines and view their own reservations.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("CUSTOMER"),
	)
	g.POST("/reservations", h.CreateReservation)
	g.GET("/my-reservations", h.ListReservations)
}
