package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/NajatBouz/study-organizer/internal/logger"
)

// Logging logs one line per request with method, path, status and duration.
type Logging struct {
	logger *logger.Logger
}

func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

func (m *Logging) Handle(c fiber.Ctx) error {
	start := time.Now()

	err := c.Next()

	m.logger.Info("request handled",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start).String())

	return err
}
