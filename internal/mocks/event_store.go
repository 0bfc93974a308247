package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/NajatBouz/study-organizer/internal/model"
)

// EventStore is a testify mock for model.EventStore.
type EventStore struct {
	mock.Mock
}

var _ model.EventStore = (*EventStore)(nil)

func (m *EventStore) GetByID(ctx context.Context, id uuid.UUID) (model.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Event), args.Error(1)
}

func (m *EventStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Event, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *EventStore) SearchByOwner(ctx context.Context, ownerID uuid.UUID, term string) ([]model.Event, error) {
	args := m.Called(ctx, ownerID, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *EventStore) Create(ctx context.Context, event model.Event) (model.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(model.Event), args.Error(1)
}

func (m *EventStore) Update(ctx context.Context, event model.Event) (model.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(model.Event), args.Error(1)
}

func (m *EventStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
