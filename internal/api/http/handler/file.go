package handler

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/NajatBouz/study-organizer/internal/api/http/middleware"
	"github.com/NajatBouz/study-organizer/internal/logger"
	"github.com/NajatBouz/study-organizer/internal/model"
	"github.com/NajatBouz/study-organizer/internal/service"
)

// FileService defines upload, download and listing of stored files.
type FileService interface {
	Upload(ctx context.Context, params service.UploadParams) (model.File, error)
	ListByFolder(ctx context.Context, userID uuid.UUID, folderID uuid.UUID) ([]model.File, error)
	Download(ctx context.Context, userID uuid.UUID, fileID uuid.UUID) (model.File, io.ReadCloser, error)
	Delete(ctx context.Context, userID uuid.UUID, fileID uuid.UUID) error
}

// File handles HTTP endpoints for file uploads and downloads.
type File struct {
	service FileService
	logger  *logger.Logger
}

func NewFile(service FileService, logger *logger.Logger) *File {
	return &File{service: service, logger: logger}
}

type fileResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	FolderID    uuid.UUID `json:"folderId"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toFileResponse(file model.File) fileResponse {
	return fileResponse{
		ID:          file.ID,
		OwnerID:     file.OwnerID,
		FolderID:    file.FolderID,
		Name:        file.Name,
		ContentType: file.ContentType,
		Size:        file.Size,
		CreatedAt:   file.CreatedAt,
	}
}

func toFileResponses(files []model.File) []fileResponse {
	out := make([]fileResponse, 0, len(files))
	for _, file := range files {
		out = append(out, toFileResponse(file))
	}
	return out
}

// Upload expects a multipart form with a "file" part and a "folderId"
// value. The request body limit caps the upload size before this runs.
func (h *File) Upload(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	header, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no file uploaded"})
	}

	rawFolderID := c.FormValue("folderId")
	if rawFolderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "folder id is required"})
	}
	folderID, err := uuid.Parse(rawFolderID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid folder id"})
	}

	content, err := header.Open()
	if err != nil {
		h.logger.Error("File handler: failed to open multipart file", "user_id", userID, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	defer content.Close()

	file, err := h.service.Upload(c.Context(), service.UploadParams{
		OwnerID:     userID,
		FolderID:    folderID,
		Name:        header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Size:        header.Size,
		Reader:      content,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toFileResponse(file))
}

func (h *File) ListByFolder(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	folderID, err := uuid.Parse(c.Params("folderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid folder id"})
	}

	files, err := h.service.ListByFolder(c.Context(), userID, folderID)
	if err != nil {
		h.logger.Error("File handler: list failed", "user_id", userID, "error", err.Error())
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toFileResponses(files))
}

func (h *File) Download(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid file id"})
	}

	file, reader, err := h.service.Download(c.Context(), userID, fileID)
	if err != nil {
		return handleError(c, err)
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Name))

	return c.SendStream(reader, int(file.Size))
}

func (h *File) Delete(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid file id"})
	}

	if err := h.service.Delete(c.Context(), userID, fileID); err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "file deleted"})
}
