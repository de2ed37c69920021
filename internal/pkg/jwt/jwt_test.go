package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "1h")

	token, expiresAt, err := svc.GenerateAccessToken("emp-1", "Alice", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, "Alice", claims["name"])
	assert.Equal(t, true, claims["is_admin"])
	assert.Equal(t, "access", claims["type"])
	assert.NotEmpty(t, claims["jti"])
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key", "not-a-duration")

	_, _, err := svc.GenerateAccessToken("emp-1", "Alice", false)
	assert.Error(t, err)
}

func TestGenerateAccessToken_UniqueTokenIDs(t *testing.T) {
	svc := NewJWTService("test-secret-key", "1h")

	first, _, err := svc.GenerateAccessToken("emp-1", "Alice", false)
	require.NoError(t, err)
	second, _, err := svc.GenerateAccessToken("emp-1", "Alice", false)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
