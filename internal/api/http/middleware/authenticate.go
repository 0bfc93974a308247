package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/NajatBouz/study-organizer/internal/logger"
)

// userIDKey is the Locals key under which the authenticated user ID is stored.
const userIDKey = "user_id"

// TokenVerifier resolves a user ID from a bearer token.
type TokenVerifier interface {
	Parse(token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects the user ID into the
// request context.
type Authenticate struct {
	tokens TokenVerifier
	logger *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenVerifier, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, logger: logger}
}

// Handle parses the Authorization header, validates the token and stores
// the user ID for downstream handlers. A missing header and a failed
// verification are both authentication failures; a header that is present
// but not of the form "Bearer <token>" is a malformed request.
func (m *Authenticate) Handle(c fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid authorization header"})
	}

	userID, err := m.tokens.Parse(parts[1])
	if err != nil {
		m.logger.Debug("Authenticate middleware: token rejected", "error", err.Error())
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token invalid or expired"})
	}
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token invalid or expired"})
	}

	c.Locals(userIDKey, userID)

	return c.Next()
}

// UserID retrieves the authenticated user ID stored by Handle.
func UserID(c fiber.Ctx) (uuid.UUID, bool) {
	userID, ok := c.Locals(userIDKey).(uuid.UUID)
	return userID, ok
}
