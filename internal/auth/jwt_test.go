package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestSecret(t *testing.T) {
	t.Helper()
	require.NoError(t, Init("test-secret-key-for-unit-tests-only", time.Minute, time.Hour))
}

func TestGenerateTokenPair(t *testing.T) {
	initTestSecret(t)

	pair, err := GenerateTokenPair(42, "jane@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	userID, err := VerifyToken(pair.Access, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)

	userID, err = VerifyToken(pair.Refresh, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerifyToken_TypeMismatch(t *testing.T) {
	initTestSecret(t)

	pair, err := GenerateTokenPair(7, "jane@x.com")
	require.NoError(t, err)

	_, err = VerifyToken(pair.Refresh, TokenTypeAccess)
	assert.Error(t, err, "refresh token must not pass as access token")

	_, err = VerifyToken(pair.Access, TokenTypeRefresh)
	assert.Error(t, err, "access token must not pass as refresh token")
}

func TestVerifyToken_Expired(t *testing.T) {
	initTestSecret(t)

	claims := jwt.MapClaims{
		"user_id":    float64(7),
		"email":      "jane@x.com",
		"token_type": TokenTypeAccess,
		"exp":        time.Now().Add(-time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtSecret))
	require.NoError(t, err)

	_, err = VerifyToken(signed, TokenTypeAccess)
	assert.Error(t, err)
}

func TestVerifyToken_WrongKey(t *testing.T) {
	initTestSecret(t)

	claims := jwt.MapClaims{
		"user_id":    float64(7),
		"token_type": TokenTypeAccess,
		"exp":        time.Now().Add(time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = VerifyToken(signed, TokenTypeAccess)
	assert.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	initTestSecret(t)

	_, err := VerifyToken("not-a-token", TokenTypeAccess)
	assert.Error(t, err)
}

func TestInit_EmptySecret(t *testing.T) {
	assert.Error(t, Init("", time.Minute, time.Hour))
}
