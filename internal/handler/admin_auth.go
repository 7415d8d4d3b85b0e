package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lavou/laundry-reservation/internal/config"
	"github.com/lavou/laundry-reservation/internal/repository"
	"github.com/lavou/laundry-reservation/internal/utils"
)

// AdminAuthHandler signs admins into the management console. Admin
// sessions are access-token only; the console is expected to re-login
// when the token expires, so no refresh tokens are issued here.
type AdminAuthHandler struct {
	Cfg    config.Config
	Admins *repository.AdminRepo
}

func NewAdminAuthHandler(cfg config.Config, a *repository.AdminRepo) *AdminAuthHandler {
	return &AdminAuthHandler{Cfg: cfg, Admins: a}
}

type adminPart struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Level int    `json:"level"`
}

// Login verifies admin credentials and returns an access token whose
// claims carry the admin's permission level.
func (h *AdminAuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Admins.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(a.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAdminAccessToken(h.Cfg.JWTSecret, a.ID, a.Level, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"admin":  adminPart{ID: a.ID, Name: a.Name, Email: a.Email, Level: a.Level},
		"access": tokenPart{Token: access.Token, Expires: access.Exp},
	})
}
