package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lavou/laundry-reservation/internal/model"
	"github.com/lavou/laundry-reservation/internal/repository"
)

// DashboardHandler serves the aggregate views behind the admin
// dashboard. All endpoints are read-only and cheap enough to compute
// per request; the response cache middleware absorbs repeated loads.
type DashboardHandler struct {
	Dash *repository.DashboardRepo
}

func NewDashboardHandler(d *repository.DashboardRepo) *DashboardHandler {
	return &DashboardHandler{Dash: d}
}

// Summary handles GET /v1/dashboard/summary.
func (h *DashboardHandler) Summary(c echo.Context) error {
	s, err := h.Dash.Summary(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load summary"})
	}
	return c.JSON(http.StatusOK, s)
}

// MachinesPerLaundromat handles GET /v1/dashboard/machines-per-laundromat.
func (h *DashboardHandler) MachinesPerLaundromat(c echo.Context) error {
	items, err := h.Dash.MachinesPerLaundromat(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load counts"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// ReservationsPerStatus handles GET /v1/dashboard/reservations-per-status.
// Statuses with no reservations are filled in with zero so charts always
// render the full set.
func (h *DashboardHandler) ReservationsPerStatus(c echo.Context) error {
	counts, err := h.Dash.ReservationsPerStatus(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load counts"})
	}
	byStatus := make(map[string]int, len(counts))
	for _, sc := range counts {
		byStatus[sc.Status] = sc.Count
	}
	items := make([]repository.StatusCount, 0, 4)
	for _, s := range []string{model.StatusPending, model.StatusConfirmed, model.StatusRefused, model.StatusCancelled} {
		items = append(items, repository.StatusCount{Status: s, Count: byStatus[s]})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
