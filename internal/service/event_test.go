package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NajatBouz/study-organizer/internal/logger"
	"github.com/NajatBouz/study-organizer/internal/mocks"
	"github.com/NajatBouz/study-organizer/internal/model"
)

func TestEvents_Create_Validation(t *testing.T) {
	ctx := context.Background()
	store := &mocks.EventStore{}
	s := NewEvents(store, logger.New(0))

	now := time.Now()
	tests := []struct {
		name   string
		params EventParams
	}{
		{name: "missing title", params: EventParams{Start: now, End: now.Add(time.Hour)}},
		{name: "missing times", params: EventParams{Title: "Exam"}},
		{name: "end before start", params: EventParams{Title: "Exam", Start: now, End: now.Add(-time.Hour)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(ctx, uuid.New(), tt.params)
			var ve *model.ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEvents_Create_Success(t *testing.T) {
	ctx := context.Background()
	store := &mocks.EventStore{}

	userID := uuid.New()
	start := time.Now().Add(24 * time.Hour)
	end := start.Add(2 * time.Hour)

	store.On("Create", mock.Anything, mock.MatchedBy(func(e model.Event) bool {
		return e.OwnerID == userID && e.Title == "Exam" && e.Start.Equal(start) && e.End.Equal(end)
	})).Return(model.Event{ID: uuid.New(), OwnerID: userID, Title: "Exam", Start: start, End: end}, nil)

	s := NewEvents(store, logger.New(0))

	event, err := s.Create(ctx, userID, EventParams{Title: "Exam", Start: start, End: end})
	require.NoError(t, err)
	assert.Equal(t, "Exam", event.Title)
}

func TestEvents_Update_NotOwner(t *testing.T) {
	ctx := context.Background()
	store := &mocks.EventStore{}

	eventID := uuid.New()
	store.On("GetByID", mock.Anything, eventID).Return(model.Event{ID: eventID, OwnerID: uuid.New()}, nil)

	s := NewEvents(store, logger.New(0))

	start := time.Now()
	_, err := s.Update(ctx, uuid.New(), eventID, EventParams{Title: "Exam", Start: start, End: start.Add(time.Hour)})
	require.ErrorIs(t, err, model.ErrForbidden)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEvents_Delete_Success(t *testing.T) {
	ctx := context.Background()
	store := &mocks.EventStore{}

	userID := uuid.New()
	eventID := uuid.New()
	store.On("GetByID", mock.Anything, eventID).Return(model.Event{ID: eventID, OwnerID: userID}, nil)
	store.On("Delete", mock.Anything, eventID).Return(nil)

	s := NewEvents(store, logger.New(0))

	require.NoError(t, s.Delete(ctx, userID, eventID))
	store.AssertExpectations(t)
}
