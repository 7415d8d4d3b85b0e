package handler

import (
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavou/laundry-reservation/internal/config"
	"github.com/lavou/laundry-reservation/internal/repository"
)

// newAuthHandler wires an AuthHandler to a mocked database so the
// token flows can be exercised without MySQL.
func newAuthHandler(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Config{
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 30,
		BcryptCost:     4,
	}
	return NewAuthHandler(cfg, repository.NewCustomerRepo(db), repository.NewTokenRepo(db)), mock
}

func validRefreshRow(customerID uint64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"customer_id", "expires_at", "revoked_at"}).
		AddRow(customerID, time.Now().UTC().Add(time.Hour), nil)
}

// A refresh whose revocation UPDATE fails must not issue a new pair;
// otherwise the old token would stay usable alongside the new one.
func TestRefreshFailsWhenRevokeFails(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT customer_id, expires_at, revoked_at FROM refresh_tokens WHERE token_hash=? LIMIT 1")).
		WillReturnRows(validRefreshRow(1))
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL")).
		WillReturnError(errors.New("connection reset"))

	c, rec := newJSONContext(http.MethodPost, "/v1/auth/refresh", `{"refresh_token":"raw-token"}`)
	assert.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"refresh failed"}`, rec.Body.String())
	// No customer load and no new token row after the failed revoke.
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A successful refresh revokes the presented token before the new pair
// is stored; the ordered expectations pin that sequence down.
func TestRefreshRotatesToken(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT customer_id, expires_at, revoked_at FROM refresh_tokens WHERE token_hash=? LIMIT 1")).
		WillReturnRows(validRefreshRow(7))
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id,name,email,password_hash,created_at,updated_at FROM customers WHERE id=? LIMIT 1")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(7, "Lea", "lea@example.com", "irrelevant", time.Now(), time.Now()))
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO refresh_tokens (customer_id, token_hash, expires_at) VALUES (?,?,?)")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	c, rec := newJSONContext(http.MethodPost, "/v1/auth/refresh", `{"refresh_token":"raw-token"}`)
	assert.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"refresh"`)
	assert.Contains(t, rec.Body.String(), `"access"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
