package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NajatBouz/study-organizer/internal/model"
)

func TestJWT_RoundTrip(t *testing.T) {
	t.Parallel()

	manager := NewJWT("test-secret", time.Hour)
	userID := uuid.New()

	tokenString, err := manager.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsedID, err := manager.Parse(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestJWT_Expired(t *testing.T) {
	t.Parallel()

	manager := NewJWT("test-secret", -time.Minute)
	tokenString, err := manager.Generate(uuid.New())
	require.NoError(t, err)

	_, err = manager.Parse(tokenString)
	assert.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestJWT_Parse_Invalid(t *testing.T) {
	t.Parallel()

	manager := NewJWT("test-secret", time.Hour)

	tests := []struct {
		name        string
		tokenString string
	}{
		{name: "garbage", tokenString: "not-a-token"},
		{name: "empty", tokenString: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := manager.Parse(tt.tokenString)
			assert.ErrorIs(t, err, model.ErrTokenInvalid)
		})
	}
}

func TestJWT_Parse_WrongSecret(t *testing.T) {
	t.Parallel()

	tokenString, err := NewJWT("secret-a", time.Hour).Generate(uuid.New())
	require.NoError(t, err)

	_, err = NewJWT("secret-b", time.Hour).Parse(tokenString)
	assert.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestNewJWT_DefaultTTL(t *testing.T) {
	t.Parallel()

	manager := NewJWT("test-secret", 0)
	j, ok := manager.(*JWT)
	require.True(t, ok)
	assert.Equal(t, DefaultTTL, j.ttl)
}

func TestNewJWT_NegativeTTLKept(t *testing.T) {
	t.Parallel()

	manager := NewJWT("test-secret", -time.Minute)
	j, ok := manager.(*JWT)
	require.True(t, ok)
	assert.Equal(t, -time.Minute, j.ttl)
}
