package handler

import (
	"bytes"
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

	"github.com/NajatBouz/study-organizer/internal/api/http/middleware"
	"github.com/NajatBouz/study-organizer/internal/mocks"
	"github.com/NajatBouz/study-organizer/internal/model"
	"github.com/NajatBouz/study-organizer/internal/service"
	"github.com/NajatBouz/study-organizer/internal/testutil"
)

// newContactApp mounts the contact routes behind the real bearer-token
// middleware. The verifier accepts "alice-token" for the given user.
func newContactApp(svc ContactService, userID uuid.UUID) *fiber.App {
	tokens := &mocks.TokenManager{}
	tokens.On("Parse", "alice-token").Return(userID, nil)
	tokens.On("Parse", mock.Anything).Return(uuid.Nil, model.ErrTokenInvalid)

	authenticate := middleware.NewAuthenticate(tokens, testutil.MakeNoopLogger())
	h := NewContact(svc, testutil.MakeNoopLogger())

	app := fiber.New()
	contacts := app.Group("/contacts", authenticate.Handle)
	contacts.Get("/", h.List)
	contacts.Post("/", h.Create)
	contacts.Put("/:id", h.Update)
	contacts.Delete("/:id", h.Delete)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestContactHandler_List_RequiresToken(t *testing.T) {
	userID := uuid.New()
	contactSvc := service.NewContacts(&mocks.ContactStore{}, testutil.MakeNoopLogger())
	app := newContactApp(contactSvc, userID)

	resp := doJSON(t, app, http.MethodGet, "/contacts/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestContactHandler_List_Success(t *testing.T) {
	userID := uuid.New()
	store := &mocks.ContactStore{}
	store.On("ListByOwner", mock.Anything, userID).
		Return([]model.Contact{{ID: uuid.New(), OwnerID: userID, Name: "Dr. Smith"}}, nil)

	app := newContactApp(service.NewContacts(store, testutil.MakeNoopLogger()), userID)

	resp := doJSON(t, app, http.MethodGet, "/contacts/", "alice-token", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var out []map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Dr. Smith", out[0]["name"])
	assert.Equal(t, userID.String(), out[0]["ownerId"])
}

func TestContactHandler_Create_Success(t *testing.T) {
	userID := uuid.New()
	store := &mocks.ContactStore{}
	store.On("Create", mock.Anything, mock.Anything).
		Return(model.Contact{ID: uuid.New(), OwnerID: userID, Name: "Dr. Smith"}, nil)

	app := newContactApp(service.NewContacts(store, testutil.MakeNoopLogger()), userID)

	resp := doJSON(t, app, http.MethodPost, "/contacts/", "alice-token", map[string]string{
		"name":     "Dr. Smith",
		"role":     "Lecturer",
		"email":    "smith@uni.edu",
		"phone":    "+3161234567",
		"category": "math",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestContactHandler_Create_MissingFields(t *testing.T) {
	userID := uuid.New()
	app := newContactApp(service.NewContacts(&mocks.ContactStore{}, testutil.MakeNoopLogger()), userID)

	resp := doJSON(t, app, http.MethodPost, "/contacts/", "alice-token", map[string]string{
		"name": "Dr. Smith",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestContactHandler_Update_ForeignContactForbidden(t *testing.T) {
	userID := uuid.New()
	contactID := uuid.New()
	store := &mocks.ContactStore{}
	store.On("GetByID", mock.Anything, contactID).
		Return(model.Contact{ID: contactID, OwnerID: uuid.New()}, nil)

	app := newContactApp(service.NewContacts(store, testutil.MakeNoopLogger()), userID)

	resp := doJSON(t, app, http.MethodPut, "/contacts/"+contactID.String(), "alice-token", map[string]string{
		"name":     "Hijacked",
		"role":     "x",
		"email":    "x@x.x",
		"phone":    "1",
		"category": "x",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestContactHandler_Update_InvalidID(t *testing.T) {
	userID := uuid.New()
	app := newContactApp(service.NewContacts(&mocks.ContactStore{}, testutil.MakeNoopLogger()), userID)

	resp := doJSON(t, app, http.MethodPut, "/contacts/not-a-uuid", "alice-token", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestContactHandler_Delete_NotFound(t *testing.T) {
	userID := uuid.New()
	contactID := uuid.New()
	store := &mocks.ContactStore{}
	store.On("GetByID", mock.Anything, contactID).Return(model.Contact{}, model.ErrNotFound)

	app := newContactApp(service.NewContacts(store, testutil.MakeNoopLogger()), userID)

	resp := doJSON(t, app, http.MethodDelete, "/contacts/"+contactID.String(), "alice-token", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
