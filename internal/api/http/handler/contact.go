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

// ContactService defines contact CRUD operations scoped to one user.
type ContactService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Contact, error)
	Create(ctx context.Context, userID uuid.UUID, params service.ContactParams) (model.Contact, error)
	Update(ctx context.Context, userID uuid.UUID, contactID uuid.UUID, params service.ContactParams) (model.Contact, error)
	Delete(ctx context.Context, userID uuid.UUID, contactID uuid.UUID) error
}

// Contact handles HTTP endpoints for contacts.
type Contact struct {
	service ContactService
	logger  *logger.Logger
}

func NewContact(service ContactService, logger *logger.Logger) *Contact {
	return &Contact{service: service, logger: logger}
}

type contactRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
}

type contactResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toContactResponse(contact model.Contact) contactResponse {
	return contactResponse{
		ID:        contact.ID,
		OwnerID:   contact.OwnerID,
		Name:      contact.Name,
		Role:      contact.Role,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Category:  contact.Category,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
}

func toContactResponses(contacts []model.Contact) []contactResponse {
	out := make([]contactResponse, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, toContactResponse(contact))
	}
	return out
}

func (h *Contact) List(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	contacts, err := h.service.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Contact handler: list failed", "user_id", userID, "error", err.Error())
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toContactResponses(contacts))
}

func (h *Contact) Create(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	var req contactRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	contact, err := h.service.Create(c.Context(), userID, service.ContactParams{
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
		Phone:    req.Phone,
		Category: req.Category,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toContactResponse(contact))
}

func (h *Contact) Update(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	contactID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid contact id"})
	}

	var req contactRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	contact, err := h.service.Update(c.Context(), userID, contactID, service.ContactParams{
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
		Phone:    req.Phone,
		Category: req.Category,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toContactResponse(contact))
}

func (h *Contact) Delete(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	contactID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid contact id"})
	}

	if err := h.service.Delete(c.Context(), userID, contactID); err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "contact deleted"})
}
