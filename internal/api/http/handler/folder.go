package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/NajatBouz/study-organizer/internal/api/http/middleware"
	"github.com/NajatBouz/study-organizer/internal/logger"
	"github.com/NajatBouz/study-organizer/internal/model"
)

// FolderService defines folder CRUD operations scoped to one user.
type FolderService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Folder, error)
	Create(ctx context.Context, userID uuid.UUID, name string) (model.Folder, error)
	Rename(ctx context.Context, userID uuid.UUID, folderID uuid.UUID, name string) (model.Folder, error)
	Delete(ctx context.Context, userID uuid.UUID, folderID uuid.UUID) error
}

// Folder handles HTTP endpoints for folders.
type Folder struct {
	service FolderService
	logger  *logger.Logger
}

func NewFolder(service FolderService, logger *logger.Logger) *Folder {
	return &Folder{service: service, logger: logger}
}

type folderRequest struct {
	Name string `json:"name"`
}

type folderResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toFolderResponse(folder model.Folder) folderResponse {
	return folderResponse{
		ID:        folder.ID,
		OwnerID:   folder.OwnerID,
		Name:      folder.Name,
		CreatedAt: folder.CreatedAt,
		UpdatedAt: folder.UpdatedAt,
	}
}

func toFolderResponses(folders []model.Folder) []folderResponse {
	out := make([]folderResponse, 0, len(folders))
	for _, folder := range folders {
		out = append(out, toFolderResponse(folder))
	}
	return out
}

func (h *Folder) List(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	folders, err := h.service.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Folder handler: list failed", "user_id", userID, "error", err.Error())
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toFolderResponses(folders))
}

func (h *Folder) Create(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	var req folderRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	folder, err := h.service.Create(c.Context(), userID, req.Name)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toFolderResponse(folder))
}

func (h *Folder) Update(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	folderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid folder id"})
	}

	var req folderRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	folder, err := h.service.Rename(c.Context(), userID, folderID, req.Name)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toFolderResponse(folder))
}

func (h *Folder) Delete(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	folderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid folder id"})
	}

	if err := h.service.Delete(c.Context(), userID, folderID); err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "folder deleted"})
}
