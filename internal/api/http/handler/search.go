package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/NajatBouz/study-organizer/internal/api/http/middleware"
	"github.com/NajatBouz/study-organizer/internal/logger"
	"github.com/NajatBouz/study-organizer/internal/service"
)

// SearchService runs the cross-resource search for one user.
type SearchService interface {
	Run(ctx context.Context, userID uuid.UUID, term string) (service.Results, error)
}

// Search handles the global search endpoint.
type Search struct {
	service SearchService
	logger  *logger.Logger
}

func NewSearch(service SearchService, logger *logger.Logger) *Search {
	return &Search{service: service, logger: logger}
}

type searchResponse struct {
	Links    []linkResponse    `json:"links"`
	Folders  []folderResponse  `json:"folders"`
	Contacts []contactResponse `json:"contacts"`
	Events   []eventResponse   `json:"events"`
}

func (h *Search) Run(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	results, err := h.service.Run(c.Context(), userID, c.Query("q"))
	if err != nil {
		h.logger.Error("Search handler: search failed", "user_id", userID, "error", err.Error())
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(searchResponse{
		Links:    toLinkResponses(results.Links),
		Folders:  toFolderResponses(results.Folders),
		Contacts: toContactResponses(results.Contacts),
		Events:   toEventResponses(results.Events),
	})
}
