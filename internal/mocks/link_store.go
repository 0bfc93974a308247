package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/NajatBouz/study-organizer/internal/model"
)

// LinkStore is a testify mock for model.LinkStore.
type LinkStore struct {
	mock.Mock
}

var _ model.LinkStore = (*LinkStore)(nil)

func (m *LinkStore) GetByID(ctx context.Context, id uuid.UUID) (model.Link, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Link), args.Error(1)
}

func (m *LinkStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, folderID *uuid.UUID) ([]model.Link, error) {
	args := m.Called(ctx, ownerID, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Link), args.Error(1)
}

func (m *LinkStore) SearchByOwner(ctx context.Context, ownerID uuid.UUID, term string) ([]model.Link, error) {
	args := m.Called(ctx, ownerID, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Link), args.Error(1)
}

func (m *LinkStore) Create(ctx context.Context, link model.Link) (model.Link, error) {
	args := m.Called(ctx, link)
	return args.Get(0).(model.Link), args.Error(1)
}

func (m *LinkStore) Update(ctx context.Context, link model.Link) (model.Link, error) {
	args := m.Called(ctx, link)
	return args.Get(0).(model.Link), args.Error(1)
}

func (m *LinkStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
