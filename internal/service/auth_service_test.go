package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-jwt-secret"

func newTestAuthService(t *testing.T, password string) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(string(hash), testSecret, time.Hour)
}

func TestLogin_Success(t *testing.T) {
	svc := newTestAuthService(t, "correct-horse")

	token, err := svc.Login("correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "dashboard", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestAuthService(t, "correct-horse")

	_, err := svc.Login("battery-staple")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestLogin_NoPasswordConfigured(t *testing.T) {
	svc := NewAuthService("", testSecret, time.Hour)

	_, err := svc.Login("anything")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

func TestNewAuthService_PanicsWithoutSecret(t *testing.T) {
	assert.Panics(t, func() {
		NewAuthService("hash", "", time.Hour)
	})
}
