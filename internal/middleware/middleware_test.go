package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/lavou/laundry-reservation/internal/utils"
)

const testSecret = "unit-test-secret"

func runJWT(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := JWTAuth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, h(c))
	return rec, c
}

func TestJWTAuthMissingBearer(t *testing.T) {
	rec, _ := runJWT(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	rec, _ := runJWT(t, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	at, err := utils.NewAccessToken("other-secret", 1, "CUSTOMER", 5)
	assert.NoError(t, err)
	rec, _ := runJWT(t, "Bearer "+at.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthInjectsClaims(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 42, "CUSTOMER", 5)
	assert.NoError(t, err)
	rec, c := runJWT(t, "Bearer "+at.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(42), c.Get("user_id"))
	assert.Equal(t, "CUSTOMER", c.Get("role"))
	assert.Nil(t, c.Get("level"))
}

func TestJWTAuthInjectsAdminLevel(t *testing.T) {
	at, err := utils.NewAdminAccessToken(testSecret, 7, 4, 5)
	assert.NoError(t, err)
	rec, c := runJWT(t, "Bearer "+at.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ADMIN", c.Get("role"))
	assert.Equal(t, float64(4), c.Get("level"))
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	cases := []struct {
		role    interface{}
		allowed []string
		want    int
	}{
		{"ADMIN", []string{"ADMIN"}, http.StatusOK},
		{"CUSTOMER", []string{"ADMIN"}, http.StatusForbidden},
		{"CUSTOMER", []string{"ADMIN", "CUSTOMER"}, http.StatusOK},
		{nil, []string{"ADMIN"}, http.StatusForbidden},
		{42, []string{"ADMIN"}, http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if tc.role != nil {
			c.Set("role", tc.role)
		}
		assert.NoError(t, RequireRole(tc.allowed...)(next)(c))
		assert.Equal(t, tc.want, rec.Code)
	}
}

func TestRequireLevel(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	cases := []struct {
		level interface{}
		min   int
		want  int
	}{
		{float64(3), 2, http.StatusOK},
		{float64(2), 2, http.StatusOK},
		{float64(1), 2, http.StatusForbidden},
		{nil, 1, http.StatusForbidden},
		{"4", 2, http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if tc.level != nil {
			c.Set("level", tc.level)
		}
		assert.NoError(t, RequireLevel(tc.min)(next)(c))
		assert.Equal(t, tc.want, rec.Code)
	}
}

func TestLevelFrom(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, 0, LevelFrom(c))

	c.Set("level", float64(5))
	assert.Equal(t, 5, LevelFrom(c))

	c.Set("level", "3")
	assert.Equal(t, 3, LevelFrom(c))

	c.Set("level", "junk")
	assert.Equal(t, 0, LevelFrom(c))
}
