package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/NajatBouz/study-organizer/internal/model"
)

// ContactStore is a testify mock for model.ContactStore.
type ContactStore struct {
	mock.Mock
}

var _ model.ContactStore = (*ContactStore)(nil)

func (m *ContactStore) GetByID(ctx context.Context, id uuid.UUID) (model.Contact, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Contact), args.Error(1)
}

func (m *ContactStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Contact, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *ContactStore) SearchByOwner(ctx context.Context, ownerID uuid.UUID, term string) ([]model.Contact, error) {
	args := m.Called(ctx, ownerID, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *ContactStore) Create(ctx context.Context, contact model.Contact) (model.Contact, error) {
	args := m.Called(ctx, contact)
	return args.Get(0).(model.Contact), args.Error(1)
}

func (m *ContactStore) Update(ctx context.Context, contact model.Contact) (model.Contact, error) {
	args := m.Called(ctx, contact)
	return args.Get(0).(model.Contact), args.Error(1)
}

func (m *ContactStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
