package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword("not-a-hash", "s3cret"))
}

func TestNewAccessTokenClaims(t *testing.T) {
	const secret = "test-secret"
	at, err := NewAccessToken(secret, 42, "CUSTOMER", 15)
	assert.NoError(t, err)
	assert.NotEmpty(t, at.Token)
	assert.True(t, at.Exp.After(time.Now().UTC()))

	tok, err := jwt.Parse(at.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	assert.NoError(t, err)
	assert.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(42), claims["sub"])
	assert.Equal(t, "CUSTOMER", claims["role"])
	_, hasLevel := claims["level"]
	assert.False(t, hasLevel)
}

func TestNewAdminAccessTokenCarriesLevel(t *testing.T) {
	const secret = "test-secret"
	at, err := NewAdminAccessToken(secret, 7, 3, 15)
	assert.NoError(t, err)

	tok, err := jwt.Parse(at.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	assert.NoError(t, err)
	assert.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(7), claims["sub"])
	assert.Equal(t, "ADMIN", claims["role"])
	assert.Equal(t, float64(3), claims["level"])
}

func TestRefreshTokenAndHash(t *testing.T) {
	r1, err := NewRefreshToken(30)
	assert.NoError(t, err)
	r2, err := NewRefreshToken(30)
	assert.NoError(t, err)

	assert.Len(t, r1.Raw, 96) // 48 random bytes hex-encoded
	assert.NotEqual(t, r1.Raw, r2.Raw)
	assert.True(t, r1.Exp.After(time.Now().UTC().Add(29*24*time.Hour)))

	// hashing is deterministic and never echoes the raw value
	assert.Equal(t, HashRefreshRaw(r1.Raw), HashRefreshRaw(r1.Raw))
	assert.NotEqual(t, r1.Raw, HashRefreshRaw(r1.Raw))
	assert.Len(t, HashRefreshRaw(r1.Raw), 64)
}
