package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lavou/laundry-reservation/internal/filter"
	"github.com/lavou/laundry-reservation/internal/model"
	"github.com/lavou/laundry-reservation/internal/queue"
	"github.com/lavou/laundry-reservation/internal/repository"
	queuepublisher "github.com/lavou/laundry-reservation/internal/service"
)

// AdminReservationHandler lets admins review every reservation and
// decide on pending ones. Decisions are published to the message broker
// so downstream consumers can notify the customer without blocking the
// request.
type AdminReservationHandler struct {
	Reservations *repository.ReservationRepo
}

func NewAdminReservationHandler(r *repository.ReservationRepo) *AdminReservationHandler {
	return &AdminReservationHandler{Reservations: r}
}

// List handles GET /v1/reservations. Optional query parameters narrow
// the result in memory: ?status= keeps one status, ?q= matches the
// customer name/email, machine kind or laundromat name. Terms shorter
// than two characters are ignored.
func (h *AdminReservationHandler) List(c echo.Context) error {
	items, err := h.Reservations.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	if status := c.QueryParam("status"); status != "" {
		items = filter.ByStatus(items, status, func(d repository.AdminReservationDetail) string {
			return d.Status
		})
	}
	if q := c.QueryParam("q"); q != "" {
		items = filter.ByTerm(items, q, func(d repository.AdminReservationDetail) []string {
			return []string{d.CustomerName, d.CustomerEmail, d.MachineKind, d.LaundromatName}
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

type transitionReq struct {
	Status  string  `json:"status"` // CONFIRMED | REFUSED | CANCELLED
	Message *string `json:"message"`
}

// Transition handles PATCH /v1/reservations/:id. Pending reservations
// can be confirmed or refused, confirmed ones cancelled; anything else
// is a 409. An optional message is stored with the decision and
// returned to the customer on their next listing.
func (h *AdminReservationHandler) Transition(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	var req transitionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := strings.ToUpper(strings.TrimSpace(req.Status))
	if status == "" || status == model.StatusPending || !model.ValidStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be CONFIRMED, REFUSED or CANCELLED"})
	}
	if req.Message != nil {
		msg := strings.TrimSpace(*req.Message)
		if msg == "" {
			req.Message = nil
		} else {
			req.Message = &msg
		}
	}

	detail, err := h.Reservations.Transition(c.Request().Context(), id, status, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrReservationNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "illegal status transition"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "transition failed"})
	}

	// Fire-and-forget: a broker outage must not fail the decision.
	ev := queue.ReservationDecidedEvent{
		ReservationID:  detail.ID,
		CustomerID:     detail.CustomerID,
		CustomerName:   detail.CustomerName,
		CustomerEmail:  detail.CustomerEmail,
		MachineID:      detail.MachineID,
		MachineKind:    detail.MachineKind,
		LaundromatName: detail.LaundromatName,
		StartsAt:       detail.StartsAt.Format(time.RFC3339),
		EndsAt:         detail.EndsAt.Format(time.RFC3339),
		Status:         detail.Status,
		DecidedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if detail.ResponseMessage != nil {
		ev.Message = *detail.ResponseMessage
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queuepublisher.PublishReservationDecided(ctx, ev)
	}()

	return c.JSON(http.StatusOK, echo.Map{"item": detail})
}
