package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/NajatBouz/study-organizer/internal/model"
)

// FolderStore is a testify mock for model.FolderStore.
type FolderStore struct {
	mock.Mock
}

var _ model.FolderStore = (*FolderStore)(nil)

func (m *FolderStore) GetByID(ctx context.Context, id uuid.UUID) (model.Folder, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Folder), args.Error(1)
}

func (m *FolderStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Folder, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *FolderStore) SearchByOwner(ctx context.Context, ownerID uuid.UUID, term string) ([]model.Folder, error) {
	args := m.Called(ctx, ownerID, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *FolderStore) Create(ctx context.Context, folder model.Folder) (model.Folder, error) {
	args := m.Called(ctx, folder)
	return args.Get(0).(model.Folder), args.Error(1)
}

func (m *FolderStore) Update(ctx context.Context, folder model.Folder) (model.Folder, error) {
	args := m.Called(ctx, folder)
	return args.Get(0).(model.Folder), args.Error(1)
}

func (m *FolderStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
