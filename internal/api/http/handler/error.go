package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/NajatBouz/study-organizer/internal/model"
)

// handleError maps service errors to HTTP responses with a stable
// {"error": message} body. Unexpected errors collapse to a 500 without
// leaking internals.
func handleError(c fiber.Ctx, err error) error {
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Message})
	}

	switch {
	case errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrInvalidResetToken):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, model.ErrTokenInvalid),
		errors.Is(err, model.ErrTokenExpired):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, model.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "not allowed"})
	case errors.Is(err, model.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, model.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
