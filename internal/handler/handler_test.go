package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// newJSONContext builds an echo context carrying a JSON body. Handlers
// under test here are exercised only on their validation paths, which
// return before any repository call, so nil repositories are fine.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func asCustomer(c echo.Context, id uint64) {
	c.Set("user_id", float64(id))
	c.Set("role", "CUSTOMER")
}

func asAdmin(c echo.Context, id uint64, level int) {
	c.Set("user_id", float64(id))
	c.Set("role", "ADMIN")
	c.Set("level", float64(level))
}

// ----- customer reservations -----

func TestCreateReservationUnauthorized(t *testing.T) {
	h := &CustomerHandler{}
	c, rec := newJSONContext(http.MethodPost, "/v1/reservations", `{"machine_id":1}`)
	assert.NoError(t, h.CreateReservation(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateReservationValidation(t *testing.T) {
	h := &CustomerHandler{}
	future := time.Now().UTC().Add(2 * time.Hour).Format(time.RFC3339)
	past := time.Now().UTC().Add(-2 * time.Hour).Format(time.RFC3339)

	cases := []struct {
		name string
		body string
	}{
		{"malformed body", `{"machine_id":"one"}`},
		{"missing machine", `{"starts_at":"` + future + `"}`},
		{"bad timestamp", `{"machine_id":1,"starts_at":"tomorrow at noon"}`},
		{"missing timestamp", `{"machine_id":1}`},
		{"start in the past", `{"machine_id":1,"starts_at":"` + past + `"}`},
	}
	for _, tc := range cases {
		c, rec := newJSONContext(http.MethodPost, "/v1/reservations", tc.body)
		asCustomer(c, 1)
		assert.NoError(t, h.CreateReservation(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.name)
	}
}

// ----- admin reservation decisions -----

func TestTransitionValidation(t *testing.T) {
	h := &AdminReservationHandler{}

	c, rec := newJSONContext(http.MethodPatch, "/v1/reservations/abc", `{"status":"CONFIRMED"}`)
	asAdmin(c, 1, 1)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	assert.NoError(t, h.Transition(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for _, status := range []string{"", "PENDING", "DONE", "pending"} {
		c, rec := newJSONContext(http.MethodPatch, "/v1/reservations/5", `{"status":"`+status+`"}`)
		asAdmin(c, 1, 1)
		c.SetParamNames("id")
		c.SetParamValues("5")
		assert.NoError(t, h.Transition(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "status=%q", status)
	}
}

// ----- admin accounts -----

func TestCreateAdminValidation(t *testing.T) {
	h := &AdminAccountHandler{}

	cases := []struct {
		name string
		body string
	}{
		{"missing fields", `{"name":"","email":"","password":""}`},
		{"level too low", `{"name":"A","email":"a@b.c","password":"x","level":0}`},
		{"level too high", `{"name":"A","email":"a@b.c","password":"x","level":6}`},
	}
	for _, tc := range cases {
		c, rec := newJSONContext(http.MethodPost, "/v1/admins", tc.body)
		asAdmin(c, 1, 3)
		assert.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.name)
	}
}

func TestDeleteAdminRequiresElevatedLevel(t *testing.T) {
	h := &AdminAccountHandler{}
	c, rec := newJSONContext(http.MethodDelete, "/v1/admins/2", "")
	asAdmin(c, 1, 1) // base level cannot delete
	c.SetParamNames("id")
	c.SetParamValues("2")
	assert.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteAdminRejectsSelf(t *testing.T) {
	h := &AdminAccountHandler{}
	c, rec := newJSONContext(http.MethodDelete, "/v1/admins/7", "")
	asAdmin(c, 7, 3)
	c.SetParamNames("id")
	c.SetParamValues("7")
	assert.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateAdminLevelValidation(t *testing.T) {
	h := &AdminAccountHandler{}
	c, rec := newJSONContext(http.MethodPatch, "/v1/admins/2/level", `{"level":9}`)
	asAdmin(c, 1, 3)
	c.SetParamNames("id")
	c.SetParamValues("2")
	assert.NoError(t, h.UpdateLevel(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ----- catalog -----

func TestCreateLaundromatValidation(t *testing.T) {
	h := &AdminCatalogHandler{}
	c, rec := newJSONContext(http.MethodPost, "/v1/laundromats", `{"name":"  ","address":""}`)
	asAdmin(c, 1, 1)
	assert.NoError(t, h.CreateLaundromat(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMachineValidation(t *testing.T) {
	h := &AdminCatalogHandler{}

	c, rec := newJSONContext(http.MethodPost, "/v1/machines", `{"kind":"WASH"}`)
	asAdmin(c, 1, 1)
	assert.NoError(t, h.CreateMachine(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newJSONContext(http.MethodPost, "/v1/machines", `{"laundromat_id":1,"kind":"IRON"}`)
	asAdmin(c, 1, 1)
	assert.NoError(t, h.CreateMachine(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ----- auth -----

func TestRegisterValidation(t *testing.T) {
	h := &AuthHandler{}
	cases := []string{
		`{"name":"","email":"a@b.c","password":"x"}`,
		`{"name":"A","email":"","password":"x"}`,
		`{"name":"A","email":"a@b.c","password":""}`,
	}
	for _, body := range cases {
		c, rec := newJSONContext(http.MethodPost, "/v1/auth/register", body)
		assert.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestLoginValidation(t *testing.T) {
	h := &AuthHandler{}
	c, rec := newJSONContext(http.MethodPost, "/v1/auth/login", `{"email":"","password":""}`)
	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutRequiresToken(t *testing.T) {
	h := &AuthHandler{}
	c, rec := newJSONContext(http.MethodPost, "/v1/auth/logout", `{"refresh_token":"  "}`)
	assert.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/healthz", "")
	assert.NoError(t, Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
