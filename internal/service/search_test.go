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

func newSearchForTest(contacts *mocks.ContactStore, links *mocks.LinkStore, events *mocks.EventStore, folders *mocks.FolderStore) *Search {
	return NewSearch(contacts, links, events, folders, logger.New(0))
}

func TestSearch_EmptyTermMatchesNothing(t *testing.T) {
	ctx := context.Background()
	contacts := &mocks.ContactStore{}
	links := &mocks.LinkStore{}
	events := &mocks.EventStore{}
	folders := &mocks.FolderStore{}

	s := newSearchForTest(contacts, links, events, folders)

	results, err := s.Run(ctx, uuid.New(), "")
	require.NoError(t, err)
	assert.Empty(t, results.Links)
	assert.Empty(t, results.Contacts)
	links.AssertNotCalled(t, "SearchByOwner", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearch_AggregatesAllResourceTypes(t *testing.T) {
	ctx := context.Background()
	contacts := &mocks.ContactStore{}
	links := &mocks.LinkStore{}
	events := &mocks.EventStore{}
	folders := &mocks.FolderStore{}

	userID := uuid.New()
	links.On("SearchByOwner", mock.Anything, userID, "math").
		Return([]model.Link{{ID: uuid.New(), OwnerID: userID, Title: "Math course"}}, nil)
	folders.On("SearchByOwner", mock.Anything, userID, "math").
		Return([]model.Folder{{ID: uuid.New(), OwnerID: userID, Name: "Math"}}, nil)
	contacts.On("SearchByOwner", mock.Anything, userID, "math").
		Return([]model.Contact{}, nil)
	events.On("SearchByOwner", mock.Anything, userID, "math").
		Return([]model.Event{{ID: uuid.New(), OwnerID: userID, Title: "Math exam"}}, nil)

	s := newSearchForTest(contacts, links, events, folders)

	results, err := s.Run(ctx, userID, "math")
	require.NoError(t, err)
	assert.Len(t, results.Links, 1)
	assert.Len(t, results.Folders, 1)
	assert.Len(t, results.Events, 1)
	// Empty buckets stay as arrays, never nil.
	assert.NotNil(t, results.Contacts)
	assert.Empty(t, results.Contacts)
}

func TestSearch_StoreError(t *testing.T) {
	ctx := context.Background()
	contacts := &mocks.ContactStore{}
	links := &mocks.LinkStore{}
	events := &mocks.EventStore{}
	folders := &mocks.FolderStore{}

	userID := uuid.New()
	links.On("SearchByOwner", mock.Anything, userID, "x").Return(nil, assert.AnError)

	s := newSearchForTest(contacts, links, events, folders)

	_, err := s.Run(ctx, userID, "x")
	require.Error(t, err)
}
