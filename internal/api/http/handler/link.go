package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/NajatBouz/study-organizer/internal/api/http/middleware"
	"github.com/NajatBouz/study-organizer/internal/logger"
	"github.com/NajatBouz/study-organizer/internal/model"
	"github.com/NajatBouz/study-organizer/internal/service"
)

// LinkService defines link CRUD operations scoped to one user.
type LinkService interface {
	List(ctx context.Context, userID uuid.UUID, folderID *uuid.UUID) ([]model.Link, error)
	Create(ctx context.Context, userID uuid.UUID, params service.LinkParams) (model.Link, error)
	Update(ctx context.Context, userID uuid.UUID, linkID uuid.UUID, params service.LinkParams) (model.Link, error)
	Delete(ctx context.Context, userID uuid.UUID, linkID uuid.UUID) error
}

// Link handles HTTP endpoints for links.
type Link struct {
	service LinkService
	logger  *logger.Logger
}

func NewLink(service LinkService, logger *logger.Logger) *Link {
	return &Link{service: service, logger: logger}
}

type linkRequest struct {
	Title    string     `json:"title"`
	URL      string     `json:"url"`
	Category string     `json:"category"`
	Note     string     `json:"note"`
	FolderID *uuid.UUID `json:"folderId"`
}

type linkResponse struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"ownerId"`
	FolderID  *uuid.UUID `json:"folderId"`
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	Category  string     `json:"category"`
	Note      string     `json:"note"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toLinkResponse(link model.Link) linkResponse {
	return linkResponse{
		ID:        link.ID,
		OwnerID:   link.OwnerID,
		FolderID:  link.FolderID,
		Title:     link.Title,
		URL:       link.URL,
		Category:  link.Category,
		Note:      link.Note,
		CreatedAt: link.CreatedAt,
		UpdatedAt: link.UpdatedAt,
	}
}

func toLinkResponses(links []model.Link) []linkResponse {
	out := make([]linkResponse, 0, len(links))
	for _, link := range links {
		out = append(out, toLinkResponse(link))
	}
	return out
}

// List supports an optional folderId query parameter narrowing the result
// to links filed in one folder.
func (h *Link) List(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	var folderID *uuid.UUID
	if raw := c.Query("folderId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid folder id"})
		}
		folderID = &parsed
	}

	links, err := h.service.List(c.Context(), userID, folderID)
	if err != nil {
		h.logger.Error("Link handler: list failed", "user_id", userID, "error", err.Error())
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toLinkResponses(links))
}

func (h *Link) Create(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	var req linkRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	link, err := h.service.Create(c.Context(), userID, service.LinkParams{
		Title:    req.Title,
		URL:      req.URL,
		Category: req.Category,
		Note:     req.Note,
		FolderID: req.FolderID,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toLinkResponse(link))
}

func (h *Link) Update(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	linkID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid link id"})
	}

	var req linkRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	link, err := h.service.Update(c.Context(), userID, linkID, service.LinkParams{
		Title:    req.Title,
		URL:      req.URL,
		Category: req.Category,
		Note:     req.Note,
		FolderID: req.FolderID,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toLinkResponse(link))
}

func (h *Link) Delete(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	linkID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid link id"})
	}

	if err := h.service.Delete(c.Context(), userID, linkID); err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "link deleted"})
}
