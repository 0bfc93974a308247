package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NajatBouz/study-organizer/internal/mocks"
	"github.com/NajatBouz/study-organizer/internal/model"
	"github.com/NajatBouz/study-organizer/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	validUserID := uuid.New()

	tests := []struct {
		name        string
		authHeader  string
		parseUserID uuid.UUID
		parseErr    error
		wantStatus  int
		wantNext    bool
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: "Token abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bearer without token",
			authHeader: "Bearer ",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "invalid token",
			authHeader:  "Bearer bad",
			parseErr:    model.ErrTokenInvalid,
			wantStatus:  http.StatusUnauthorized,
			parseUserID: uuid.Nil,
		},
		{
			name:        "expired token",
			authHeader:  "Bearer expired",
			parseErr:    model.ErrTokenExpired,
			wantStatus:  http.StatusUnauthorized,
			parseUserID: uuid.Nil,
		},
		{
			name:        "nil user id",
			authHeader:  "Bearer odd",
			parseUserID: uuid.Nil,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:        "valid token",
			authHeader:  "Bearer good",
			parseUserID: validUserID,
			wantStatus:  http.StatusOK,
			wantNext:    true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := &mocks.TokenManager{}
			if tt.authHeader != "" && tt.wantStatus != http.StatusBadRequest {
				tokens.On("Parse", mock.AnythingOfType("string")).Return(tt.parseUserID, tt.parseErr)
			}

			m := NewAuthenticate(tokens, testutil.MakeNoopLogger())

			nextCalled := false
			app := fiber.New()
			app.Get("/protected", m.Handle, func(c fiber.Ctx) error {
				nextCalled = true
				userID, ok := UserID(c)
				require.True(t, ok)
				assert.Equal(t, validUserID, userID)
				return c.SendStatus(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
