package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NajatBouz/study-organizer/internal/logger"
	"github.com/NajatBouz/study-organizer/internal/mocks"
	"github.com/NajatBouz/study-organizer/internal/model"
)

func validContactParams() ContactParams {
	return ContactParams{
		Name:     "Dr. Smith",
		Role:     "Lecturer",
		Email:    "smith@uni.edu",
		Phone:    "+3161234567",
		Category: "math",
	}
}

func TestContacts_List(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ContactStore{}
	userID := uuid.New()

	expected := []model.Contact{{ID: uuid.New(), OwnerID: userID, Name: "Dr. Smith"}}
	store.On("ListByOwner", mock.Anything, userID).Return(expected, nil)

	s := NewContacts(store, logger.New(0))

	contacts, err := s.List(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, contacts)
}

func TestContacts_Create_Success(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ContactStore{}
	userID := uuid.New()

	store.On("Create", mock.Anything, mock.MatchedBy(func(c model.Contact) bool {
		return c.OwnerID == userID && c.Name == "Dr. Smith" && c.ID != uuid.Nil
	})).Return(model.Contact{ID: uuid.New(), OwnerID: userID, Name: "Dr. Smith"}, nil)

	s := NewContacts(store, logger.New(0))

	contact, err := s.Create(ctx, userID, validContactParams())
	require.NoError(t, err)
	assert.Equal(t, userID, contact.OwnerID)
}

func TestContacts_Create_MissingFields(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ContactStore{}
	s := NewContacts(store, logger.New(0))

	params := validContactParams()
	params.Phone = ""

	_, err := s.Create(ctx, uuid.New(), params)
	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContacts_Update_NotOwner(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ContactStore{}

	contactID := uuid.New()
	store.On("GetByID", mock.Anything, contactID).Return(model.Contact{ID: contactID, OwnerID: uuid.New()}, nil)

	s := NewContacts(store, logger.New(0))

	_, err := s.Update(ctx, uuid.New(), contactID, validContactParams())
	require.ErrorIs(t, err, model.ErrForbidden)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestContacts_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ContactStore{}

	contactID := uuid.New()
	store.On("GetByID", mock.Anything, contactID).Return(model.Contact{}, model.ErrNotFound)

	s := NewContacts(store, logger.New(0))

	_, err := s.Update(ctx, uuid.New(), contactID, validContactParams())
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestContacts_Update_Success(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ContactStore{}

	userID := uuid.New()
	contactID := uuid.New()
	store.On("GetByID", mock.Anything, contactID).
		Return(model.Contact{ID: contactID, OwnerID: userID, Name: "Old Name"}, nil)
	store.On("Update", mock.Anything, mock.MatchedBy(func(c model.Contact) bool {
		return c.ID == contactID && c.Name == "Dr. Smith"
	})).Return(model.Contact{ID: contactID, OwnerID: userID, Name: "Dr. Smith"}, nil)

	s := NewContacts(store, logger.New(0))

	contact, err := s.Update(ctx, userID, contactID, validContactParams())
	require.NoError(t, err)
	assert.Equal(t, "Dr. Smith", contact.Name)
}

func TestContacts_Delete_NotOwner(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ContactStore{}

	contactID := uuid.New()
	store.On("GetByID", mock.Anything, contactID).Return(model.Contact{ID: contactID, OwnerID: uuid.New()}, nil)

	s := NewContacts(store, logger.New(0))

	err := s.Delete(ctx, uuid.New(), contactID)
	require.ErrorIs(t, err, model.ErrForbidden)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestContacts_Delete_Success(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ContactStore{}

	userID := uuid.New()
	contactID := uuid.New()
	store.On("GetByID", mock.Anything, contactID).Return(model.Contact{ID: contactID, OwnerID: userID}, nil)
	store.On("Delete", mock.Anything, contactID).Return(nil)

	s := NewContacts(store, logger.New(0))

	require.NoError(t, s.Delete(ctx, userID, contactID))
	store.AssertExpectations(t)
}
