package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NajatBouz/study-organizer/internal/model"
	"github.com/NajatBouz/study-organizer/internal/service"
	"github.com/NajatBouz/study-organizer/internal/testutil"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, params service.RegisterParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, model.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(model.User), args.Error(2)
}

func (m *mockAuthService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	args := m.Called(ctx, rawToken, newPassword)
	return args.Error(0)
}

func newAuthApp(svc AuthService, devMode bool) *fiber.App {
	h := NewAuth(svc, testutil.MakeNoopLogger(), devMode, "http://localhost:5173")

	app := fiber.New()
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
	app.Post("/auth/forgot-password", h.ForgotPassword)
	app.Post("/auth/reset-password", h.ResetPassword)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestAuthHandler_Register_Created(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Register", mock.Anything, service.RegisterParams{
		Email:    "a@b.c",
		Password: "password123",
		Name:     "A",
	}).Return(nil)

	app := newAuthApp(svc, false)

	resp := postJSON(t, app, "/auth/register", map[string]string{
		"email":    "a@b.c",
		"password": "password123",
		"name":     "A",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "user created", body["message"])
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Register", mock.Anything, mock.Anything).Return(model.ErrConflict)

	app := newAuthApp(svc, false)

	resp := postJSON(t, app, "/auth/register", map[string]string{
		"email":    "taken@b.c",
		"password": "password123",
		"name":     "A",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Register", mock.Anything, mock.Anything).Return(model.NewValidationError("password must be at least 8 characters"))

	app := newAuthApp(svc, false)

	resp := postJSON(t, app, "/auth/register", map[string]string{
		"email":    "a@b.c",
		"password": "short",
		"name":     "A",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "password must be at least 8 characters", body["error"])
}

func TestAuthHandler_Login_Success(t *testing.T) {
	userID := uuid.New()
	svc := &mockAuthService{}
	svc.On("Login", mock.Anything, "a@b.c", "password123").
		Return("signed-token", model.User{ID: userID, Email: "a@b.c", Name: "A"}, nil)

	app := newAuthApp(svc, false)

	resp := postJSON(t, app, "/auth/login", map[string]string{
		"email":    "a@b.c",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "signed-token", body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, userID.String(), user["id"])
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return("", model.User{}, model.ErrInvalidCredentials)

	app := newAuthApp(svc, false)

	resp := postJSON(t, app, "/auth/login", map[string]string{
		"email":    "a@b.c",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, model.ErrInvalidCredentials.Error(), body["error"])
}

func TestAuthHandler_ForgotPassword_DevModeCarriesResetURL(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("ForgotPassword", mock.Anything, "a@b.c").Return("rawtoken", nil)

	app := newAuthApp(svc, true)

	resp := postJSON(t, app, "/auth/forgot-password", map[string]string{"email": "a@b.c"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "http://localhost:5173/reset-password?token=rawtoken", body["resetUrl"])
}

func TestAuthHandler_ForgotPassword_ProductionHidesToken(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("ForgotPassword", mock.Anything, "a@b.c").Return("rawtoken", nil)

	app := newAuthApp(svc, false)

	resp := postJSON(t, app, "/auth/forgot-password", map[string]string{"email": "a@b.c"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotContains(t, body, "resetUrl")
}

func TestAuthHandler_ForgotPassword_UnknownEmail(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("ForgotPassword", mock.Anything, "nobody@b.c").Return("", model.ErrNotFound)

	app := newAuthApp(svc, false)

	resp := postJSON(t, app, "/auth/forgot-password", map[string]string{"email": "nobody@b.c"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestAuthHandler_ResetPassword_InvalidToken(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("ResetPassword", mock.Anything, "bogus", "password123").Return(model.ErrInvalidResetToken)

	app := newAuthApp(svc, false)

	resp := postJSON(t, app, "/auth/reset-password", map[string]string{
		"token":       "bogus",
		"newPassword": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
