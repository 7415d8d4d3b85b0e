package router

import (
	"github.com/labstack/echo/v4"

	"github.com/lavou/laundry-reservation/internal/handler"
	"github.com/lavou/laundry-reservation/internal/middleware"
)

// RegisterAdmin registers the management console endpoints under /v1.
// All routes require a valid JWT with the ADMIN role; the account
// delete endpoint additionally requires a level above the base tier.
func RegisterAdmin(e *echo.Echo, accounts *handler.AdminAccountHandler, catalog *handler.AdminCatalogHandler, reservations *handler.AdminReservationHandler, dash *handler.DashboardHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	// Admin accounts.
	g.POST("/admins", accounts.Create)
	g.GET("/admins", accounts.List)
	g.PATCH("/admins/:id/level", accounts.UpdateLevel)
	g.DELETE("/admins/:id", accounts.Delete, middleware.RequireLevel(2))

	// Laundromat catalog.
	g.POST("/laundromats", catalog.CreateLaundromat)
	g.PATCH("/laundromats/:id/highlight", catalog.ToggleHighlight)
	g.DELETE("/laundromats/:id", catalog.DeleteLaundromat)

	// Machine catalog. The /machines/all listing includes inactive
	// machines, unlike the public /machines route.
	g.GET("/machines/all", catalog.ListMachines)
	g.POST("/machines", catalog.CreateMachine)
	g.PATCH("/machines/:id/active", catalog.ToggleActive)
	g.DELETE("/machines/:id", catalog.DeleteMachine)

	// Reservation review and decisions.
	g.GET("/reservations", reservations.List)
	g.PATCH("/reservations/:id", reservations.Transition)

	// Dashboard aggregates.
	g.GET("/dashboard/summary", dash.Summary)
	g.GET("/dashboard/machines-per-laundromat", dash.MachinesPerLaundromat)
	g.GET("/dashboard/reservations-per-status", dash.ReservationsPerStatus)
}
