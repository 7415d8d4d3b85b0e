package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lavou/laundry-reservation/internal/repository"
)

// CustomerHandler groups the repositories needed to place reservations
// and list a customer's own bookings. All methods assume that JWT
// authentication and role validation has already been performed by
// middleware; they may still return 401 when the user ID cannot be
// extracted from the context.
type CustomerHandler struct {
	Reservations *repository.ReservationRepo
}

// NewCustomerHandler constructs a new CustomerHandler with the provided
// repository. The dependency must be non-nil.
func NewCustomerHandler(r *repository.ReservationRepo) *CustomerHandler {
	if r == nil {
		panic("nil repository passed to NewCustomerHandler")
	}
	return &CustomerHandler{Reservations: r}
}

type createReservationReq struct {
	MachineID uint64 `json:"machine_id"`
	StartsAt  string `json:"starts_at"` // RFC3339
}

// CreateReservation handles POST /v1/reservations. Every booking covers
// a fixed one-hour window starting at the requested time; the server
// computes the end and stores the reservation as PENDING. It returns
// 404 for an unknown machine, 409 when the machine is inactive or the
// window overlaps an open booking, and 400 for malformed input or a
// start time in the past.
func (h *CustomerHandler) CreateReservation(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.MachineID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "machine_id is required"})
	}
	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "starts_at must be RFC3339"})
	}
	if !startsAt.After(time.Now().UTC()) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "starts_at must be in the future"})
	}

	detail, err := h.Reservations.Create(c.Request().Context(), customerID, req.MachineID, startsAt)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMachineNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "machine not found"})
		case errors.Is(err, repository.ErrMachineInactive):
			return c.JSON(http.StatusConflict, echo.Map{"error": "machine is not active"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "time slot already booked"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create reservation"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": detail})
}

// ListReservations handles GET /v1/my-reservations. It returns all
// reservations created by the current customer along with machine and
// laundromat details, newest first. When no reservations exist, it
// returns an empty array.
func (h *CustomerHandler) ListReservations(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Reservations.ListByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
