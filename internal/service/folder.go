package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NajatBouz/study-organizer/internal/logger"
	"github.com/NajatBouz/study-organizer/internal/model"
)

// Folders manages the folders that group links and files.
type Folders struct {
	store  model.FolderStore
	logger *logger.Logger
}

func NewFolders(store model.FolderStore, logger *logger.Logger) *Folders {
	return &Folders{store: store, logger: logger}
}

func (s *Folders) List(ctx context.Context, userID uuid.UUID) ([]model.Folder, error) {
	folders, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return folders, nil
}

func (s *Folders) Create(ctx context.Context, userID uuid.UUID, name string) (model.Folder, error) {
	if name == "" {
		return model.Folder{}, model.NewValidationError("name is required")
	}

	now := time.Now()
	folder := model.Folder{
		ID:        uuid.New(),
		OwnerID:   userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	folder, err := s.store.Create(ctx, folder)
	if err != nil {
		return model.Folder{}, fmt.Errorf("failed to create folder: %w", err)
	}

	return folder, nil
}

// Rename changes the folder name, keeping the current name when the new
// one is empty.
func (s *Folders) Rename(ctx context.Context, userID uuid.UUID, folderID uuid.UUID, name string) (model.Folder, error) {
	folder, err := s.store.GetByID(ctx, folderID)
	folder, err = requireOwner(folder, err, userID)
	if err != nil {
		return model.Folder{}, err
	}

	if name != "" {
		folder.Name = name
	}
	folder.UpdatedAt = time.Now()

	folder, err = s.store.Update(ctx, folder)
	if err != nil {
		return model.Folder{}, fmt.Errorf("failed to update folder: %w", err)
	}

	return folder, nil
}

func (s *Folders) Delete(ctx context.Context, userID uuid.UUID, folderID uuid.UUID) error {
	folder, err := s.store.GetByID(ctx, folderID)
	if _, err = requireOwner(folder, err, userID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, folderID); err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}

	return nil
}
