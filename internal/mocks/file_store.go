package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/NajatBouz/study-organizer/internal/model"
)

// FileStore is a testify mock for model.FileStore.
type FileStore struct {
	mock.Mock
}

var _ model.FileStore = (*FileStore)(nil)

func (m *FileStore) GetByID(ctx context.Context, id uuid.UUID) (model.File, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.File), args.Error(1)
}

func (m *FileStore) ListByFolder(ctx context.Context, ownerID uuid.UUID, folderID uuid.UUID) ([]model.File, error) {
	args := m.Called(ctx, ownerID, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.File), args.Error(1)
}

func (m *FileStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.File, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.File), args.Error(1)
}

func (m *FileStore) Create(ctx context.Context, file model.File) (model.File, error) {
	args := m.Called(ctx, file)
	return args.Get(0).(model.File), args.Error(1)
}

func (m *FileStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
