package service

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/NajatBouz/study-organizer/internal/logger"
	"github.com/NajatBouz/study-organizer/internal/model"
)

// allowedContentTypes lists the mimetypes accepted for upload.
var allowedContentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"text/plain",
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"application/zip",
	"application/x-rar-compressed",
}

// Files manages uploaded documents: metadata rows in the database, content
// in object storage.
type Files struct {
	store       model.FileStore
	folderStore model.FolderStore
	storage     model.Storage
	logger      *logger.Logger
}

func NewFiles(
	store model.FileStore,
	folderStore model.FolderStore,
	storage model.Storage,
	logger *logger.Logger,
) *Files {
	return &Files{
		store:       store,
		folderStore: folderStore,
		storage:     storage,
		logger:      logger,
	}
}

// UploadParams carries an upload request. Reader streams the content; Size
// is the declared content length.
type UploadParams struct {
	OwnerID     uuid.UUID
	FolderID    uuid.UUID
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Upload stores the content in object storage and records the metadata.
// The target folder must exist and belong to the uploader.
func (s *Files) Upload(ctx context.Context, params UploadParams) (model.File, error) {
	if params.Name == "" {
		return model.File{}, model.NewValidationError("file name is required")
	}
	if params.FolderID == uuid.Nil {
		return model.File{}, model.NewValidationError("folder id is required")
	}
	if !slices.Contains(allowedContentTypes, params.ContentType) {
		return model.File{}, model.NewValidationError(fmt.Sprintf("content type %s is not allowed", params.ContentType))
	}

	folder, err := s.folderStore.GetByID(ctx, params.FolderID)
	if _, err = requireOwner(folder, err, params.OwnerID); err != nil {
		return model.File{}, err
	}

	fileID := uuid.New()
	key := fmt.Sprintf("user-%s/file-%s/%s", params.OwnerID, fileID, params.Name)

	if err := s.storage.Upload(ctx, key, params.Reader, params.Size, params.ContentType); err != nil {
		return model.File{}, fmt.Errorf("failed to upload to storage: %w", err)
	}

	file := model.File{
		ID:          fileID,
		OwnerID:     params.OwnerID,
		FolderID:    params.FolderID,
		Name:        params.Name,
		Key:         key,
		ContentType: params.ContentType,
		Size:        params.Size,
		CreatedAt:   time.Now(),
	}

	file, err = s.store.Create(ctx, file)
	if err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Error("Files service: failed to delete orphaned object", "key", key, "error", delErr.Error())
		}
		return model.File{}, fmt.Errorf("failed to create file record: %w", err)
	}

	s.logger.Info("Files service: file uploaded", "file_id", file.ID, "user_id", params.OwnerID, "size", params.Size)

	return file, nil
}

// ListByFolder returns the user's files in one folder, newest first.
func (s *Files) ListByFolder(ctx context.Context, userID uuid.UUID, folderID uuid.UUID) ([]model.File, error) {
	files, err := s.store.ListByFolder(ctx, userID, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}

// Download returns the file metadata and a reader over its content.
// The caller closes the reader.
func (s *Files) Download(ctx context.Context, userID uuid.UUID, fileID uuid.UUID) (model.File, io.ReadCloser, error) {
	file, err := s.store.GetByID(ctx, fileID)
	file, err = requireOwner(file, err, userID)
	if err != nil {
		return model.File{}, nil, err
	}

	exists, err := s.storage.Exists(ctx, file.Key)
	if err != nil {
		return model.File{}, nil, fmt.Errorf("failed to stat object: %w", err)
	}
	if !exists {
		return model.File{}, nil, model.ErrNotFound
	}

	reader, err := s.storage.Download(ctx, file.Key)
	if err != nil {
		return model.File{}, nil, fmt.Errorf("failed to download from storage: %w", err)
	}

	return file, reader, nil
}

// Delete removes the object best effort, then the metadata row.
func (s *Files) Delete(ctx context.Context, userID uuid.UUID, fileID uuid.UUID) error {
	file, err := s.store.GetByID(ctx, fileID)
	file, err = requireOwner(file, err, userID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, file.Key); err != nil {
		s.logger.Error("Files service: failed to delete object from storage", "key", file.Key, "error", err.Error())
	}

	if err := s.store.Delete(ctx, fileID); err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}

	return nil
}
