package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lavou/laundry-reservation/internal/config"
	"github.com/lavou/laundry-reservation/internal/filter"
	"github.com/lavou/laundry-reservation/internal/middleware"
	"github.com/lavou/laundry-reservation/internal/model"
	"github.com/lavou/laundry-reservation/internal/repository"
)

// AdminAccountHandler manages admin accounts: creation, listing, level
// changes and deletion. Deleting an account additionally requires the
// caller's level to be above the base level; that check happens here
// because it depends on the caller's claims, not only the route.
type AdminAccountHandler struct {
	Cfg    config.Config
	Admins *repository.AdminRepo
}

func NewAdminAccountHandler(cfg config.Config, a *repository.AdminRepo) *AdminAccountHandler {
	return &AdminAccountHandler{Cfg: cfg, Admins: a}
}

type createAdminReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Level    int    `json:"level"`
}

// Create handles POST /v1/admins.
func (h *AdminAccountHandler) Create(c echo.Context) error {
	var req createAdminReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email/password required"})
	}
	if !model.ValidLevel(req.Level) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "level must be between 1 and 5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Admins.Create(ctx, req.Name, req.Email, req.Password, req.Level, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create admin failed"})
	}
	return c.JSON(http.StatusCreated, adminPart{ID: id, Name: req.Name, Email: req.Email, Level: req.Level})
}

// List handles GET /v1/admins. Password hashes are never included.
// Optional ?q= narrows by name/email, ?level= keeps one level.
func (h *AdminAccountHandler) List(c echo.Context) error {
	admins, err := h.Admins.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load admins"})
	}
	items := make([]adminPart, 0, len(admins))
	for _, a := range admins {
		items = append(items, adminPart{ID: a.ID, Name: a.Name, Email: a.Email, Level: a.Level})
	}
	if q := c.QueryParam("q"); q != "" {
		items = filter.ByTerm(items, q, func(a adminPart) []string {
			return []string{a.Name, a.Email}
		})
	}
	if lvl := c.QueryParam("level"); lvl != "" {
		items = filter.ByStatus(items, lvl, func(a adminPart) string {
			return strconv.Itoa(a.Level)
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

type updateLevelReq struct {
	Level int `json:"level"`
}

// UpdateLevel handles PATCH /v1/admins/:id/level.
func (h *AdminAccountHandler) UpdateLevel(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid admin id"})
	}
	var req updateLevelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !model.ValidLevel(req.Level) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "level must be between 1 and 5"})
	}
	if err := h.Admins.UpdateLevel(c.Request().Context(), id, req.Level); err != nil {
		if err == repository.ErrAdminNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "admin not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/admins/:id. Only admins above the base
// level may delete accounts, and nobody deletes themselves.
func (h *AdminAccountHandler) Delete(c echo.Context) error {
	if middleware.LevelFrom(c) <= model.LevelMin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid admin id"})
	}
	if self, err := getUserID(c); err == nil && self == id {
		return c.JSON(http.StatusConflict, echo.Map{"error": "cannot delete own account"})
	}
	if err := h.Admins.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrAdminNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "admin not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
