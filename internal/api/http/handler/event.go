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

// EventService defines event CRUD operations scoped to one user.
type EventService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Event, error)
	Create(ctx context.Context, userID uuid.UUID, params service.EventParams) (model.Event, error)
	Update(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, params service.EventParams) (model.Event, error)
	Delete(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) error
}

// Event handles HTTP endpoints for calendar events.
type Event struct {
	service EventService
	logger  *logger.Logger
}

func NewEvent(service EventService, logger *logger.Logger) *Event {
	return &Event{service: service, logger: logger}
}

type eventRequest struct {
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Description string    `json:"description"`
}

type eventResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toEventResponse(event model.Event) eventResponse {
	return eventResponse{
		ID:          event.ID,
		OwnerID:     event.OwnerID,
		Title:       event.Title,
		Start:       event.Start,
		End:         event.End,
		Description: event.Description,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}

func toEventResponses(events []model.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, toEventResponse(event))
	}
	return out
}

func (h *Event) List(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	events, err := h.service.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Event handler: list failed", "user_id", userID, "error", err.Error())
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toEventResponses(events))
}

func (h *Event) Create(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	var req eventRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	event, err := h.service.Create(c.Context(), userID, service.EventParams{
		Title:       req.Title,
		Start:       req.Start,
		End:         req.End,
		Description: req.Description,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toEventResponse(event))
}

func (h *Event) Update(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event id"})
	}

	var req eventRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	event, err := h.service.Update(c.Context(), userID, eventID, service.EventParams{
		Title:       req.Title,
		Start:       req.Start,
		End:         req.End,
		Description: req.Description,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toEventResponse(event))
}

func (h *Event) Delete(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event id"})
	}

	if err := h.service.Delete(c.Context(), userID, eventID); err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "event deleted"})
}
