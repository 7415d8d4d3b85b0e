package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/lavou/laundry-reservation/internal/handler"
	"github.com/lavou/laundry-reservation/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems use this endpoint to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies
// the necessary middleware. Unauthenticated operations live under
// /v1/auth and /v1/admin, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, aa *handler.AdminAuthHandler, jwtSecret string) {
	// Customer session endpoints. None of these require an existing
	// session; each handler generates or exchanges tokens itself.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Rotates the refresh token on every use.
	g.POST("/refresh", a.Refresh)
	// Logout takes a refresh token in the body and revokes that single
	// session; no JWT middleware is needed.
	g.POST("/logout", a.Logout)

	// Admin console sign-in.
	e.POST("/v1/admin/login", aa.Login)

	// Routes below require a valid customer access token.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("CUSTOMER"))
	auth.GET("/me", a.Me)
	auth.POST("/auth/logout-all", a.LogoutAll)
}

// RegisterPublic registers unauthenticated browse endpoints on the
// provided Echo instance. The optional cache middleware wraps these
// GET routes so repeated catalog loads are served from Redis.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	mws := []echo.MiddlewareFunc{}
	if cache != nil {
		mws = append(mws, cache)
	}
	g := e.Group("/v1", mws...)
	// Active machines with their laundromat details.
	g.GET("/machines", p.ListMachines)
	// Single machine by id.
	g.GET("/machines/:id", p.GetMachine)
	// Free-text search across machine kind, laundromat name and address.
	g.GET("/machines/search/:term", p.SearchMachines)
	// All laundromats with derived machine counts.
	g.GET("/laundromats", p.ListLaundromats)
}
