package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lavou/laundry-reservation/internal/filter"
	"github.com/lavou/laundry-reservation/internal/model"
	"github.com/lavou/laundry-reservation/internal/repository"
)

// AdminCatalogHandler manages the laundromat and machine catalog from
// the admin console: creating units and machines, toggling the
// highlight and active flags, and deleting entries that are no longer
// referenced.
type AdminCatalogHandler struct {
	Laundromats *repository.LaundromatRepo
	Machines    *repository.MachineRepo
}

func NewAdminCatalogHandler(l *repository.LaundromatRepo, m *repository.MachineRepo) *AdminCatalogHandler {
	return &AdminCatalogHandler{Laundromats: l, Machines: m}
}

// ----- laundromats -----

type createLaundromatReq struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Photo       *string `json:"photo"`
	Highlighted bool    `json:"highlighted"`
}

// CreateLaundromat handles POST /v1/laundromats.
func (h *AdminCatalogHandler) CreateLaundromat(c echo.Context) error {
	var req createLaundromatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	if req.Name == "" || req.Address == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/address required"})
	}
	d, err := h.Laundromats.Create(c.Request().Context(), req.Name, req.Address, req.Photo, req.Highlighted)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create laundromat failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": d})
}

// ToggleHighlight handles PATCH /v1/laundromats/:id/highlight. The flag
// is flipped server-side so concurrent toggles never lose an update.
func (h *AdminCatalogHandler) ToggleHighlight(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid laundromat id"})
	}
	d, err := h.Laundromats.ToggleHighlight(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrLaundromatNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "laundromat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "toggle failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": d})
}

// DeleteLaundromat handles DELETE /v1/laundromats/:id. A unit that
// still hosts machines cannot be removed; its machines go first.
func (h *AdminCatalogHandler) DeleteLaundromat(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid laundromat id"})
	}
	if err := h.Laundromats.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrLaundromatNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "laundromat not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "laundromat still has machines"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- machines -----

type createMachineReq struct {
	LaundromatID uint64  `json:"laundromat_id"`
	Kind         string  `json:"kind"` // WASH | DRY
	Active       *bool   `json:"active"`
	Photo        *string `json:"photo"`
}

// ListMachines handles GET /v1/machines/all. Unlike the public listing
// it includes inactive machines. An optional ?q= narrows by machine
// kind, laundromat name or address.
func (h *AdminCatalogHandler) ListMachines(c echo.Context) error {
	items, err := h.Machines.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load machines"})
	}
	if q := c.QueryParam("q"); q != "" {
		items = filter.ByTerm(items, q, func(d repository.MachineDetail) []string {
			return []string{d.Kind, d.Laundromat.Name, d.Laundromat.Address}
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateMachine handles POST /v1/machines. New machines default to
// active unless the body says otherwise.
func (h *AdminCatalogHandler) CreateMachine(c echo.Context) error {
	var req createMachineReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.LaundromatID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "laundromat_id is required"})
	}
	kind := strings.ToUpper(strings.TrimSpace(req.Kind))
	if !model.ValidKind(kind) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "kind must be WASH or DRY"})
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	d, err := h.Machines.Create(c.Request().Context(), req.LaundromatID, kind, active, req.Photo)
	if err != nil {
		if errors.Is(err, repository.ErrLaundromatNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "laundromat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create machine failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": d})
}

// ToggleActive handles PATCH /v1/machines/:id/active. Deactivating a
// machine only blocks new bookings; existing reservations stay as they
// are.
func (h *AdminCatalogHandler) ToggleActive(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid machine id"})
	}
	d, err := h.Machines.ToggleActive(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMachineNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "machine not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "toggle failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": d})
}

// DeleteMachine handles DELETE /v1/machines/:id. Machines with open
// (PENDING or CONFIRMED) reservations cannot be removed.
func (h *AdminCatalogHandler) DeleteMachine(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid machine id"})
	}
	if err := h.Machines.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrMachineNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "machine not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "machine has open reservations"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
