package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateToken(t *testing.T) {
	svc := NewService(testSecret)
	exp := time.Now().Add(time.Hour).Unix()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "jumper-1",
		"name":  "Shayde",
		"email": "shayde@example.com",
		"exp":   exp,
	})

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "jumper-1", claims.Subject)
	assert.Equal(t, "Shayde", claims.Name)
	assert.Equal(t, "shayde@example.com", claims.Email)
	assert.Equal(t, exp, claims.Exp)
}

func TestValidateToken_StripsBearerPrefix(t *testing.T) {
	svc := NewService(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "jumper-1"})

	claims, err := svc.ValidateToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "jumper-1", claims.Subject)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := NewService(testSecret)
	token := signToken(t, "some-other-secret", jwt.MapClaims{"sub": "jumper-1"})

	_, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewService(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "jumper-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_UnexpectedAlgorithm(t *testing.T) {
	svc := NewService(testSecret)
	// alg=none tokens must never validate.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "jumper-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_MissingSubject(t *testing.T) {
	svc := NewService(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{"name": "anonymous"})

	_, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewService(testSecret)
	_, err := svc.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	svc := NewService(testSecret)

	token, err := svc.ExtractTokenFromHeader("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = svc.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ExtractTokenFromHeader("abc123")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ExtractTokenFromHeader("Basic abc123")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ExtractTokenFromHeader("Bearer ")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
