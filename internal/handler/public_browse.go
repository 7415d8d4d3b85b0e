package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lavou/laundry-reservation/internal/filter"
	"github.com/lavou/laundry-reservation/internal/repository"
)

// PublicHandler exposes the unauthenticated browse endpoints: active
// machines, machine details, free-text machine search and the
// laundromat listing. No JWT or role middleware applies to these
// routes; guests use them to explore the catalog before registering.
type PublicHandler struct {
	Machines    *repository.MachineRepo
	Laundromats *repository.LaundromatRepo
}

func NewPublicHandler(m *repository.MachineRepo, l *repository.LaundromatRepo) *PublicHandler {
	return &PublicHandler{Machines: m, Laundromats: l}
}

// ListMachines handles GET /v1/machines. It returns all active machines
// with their laundromat details, highlighted laundromats first.
func (h *PublicHandler) ListMachines(c echo.Context) error {
	items, err := h.Machines.ListActive(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load machines"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetMachine handles GET /v1/machines/:id.
func (h *PublicHandler) GetMachine(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid machine id"})
	}
	d, err := h.Machines.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrMachineNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "machine not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load machine"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": d})
}

// SearchMachines handles GET /v1/machines/search/:term. Terms shorter
// than two characters after trimming are treated as no filter, so the
// full active listing comes back instead of an empty one.
func (h *PublicHandler) SearchMachines(c echo.Context) error {
	term := filter.Normalize(c.Param("term"))
	if term == "" {
		return h.ListMachines(c)
	}
	items, err := h.Machines.Search(c.Request().Context(), term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "search failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "term": strings.TrimSpace(c.Param("term"))})
}

// ListLaundromats handles GET /v1/laundromats. It returns all
// laundromats with derived machine counts, highlighted first.
func (h *PublicHandler) ListLaundromats(c echo.Context) error {
	items, err := h.Laundromats.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load laundromats"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
