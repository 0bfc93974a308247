package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/NajatBouz/study-organizer/internal/api/http/middleware"
	"github.com/NajatBouz/study-organizer/internal/logger"
	"github.com/NajatBouz/study-organizer/internal/model"
	"github.com/NajatBouz/study-organizer/internal/service"
)

// AuthService defines the credential lifecycle operations.
type AuthService interface {
	Register(ctx context.Context, params service.RegisterParams) error
	Login(ctx context.Context, email, password string) (string, model.User, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, rawToken, newPassword string) error
}

// Auth handles HTTP endpoints for registration, login and password reset.
type Auth struct {
	service     AuthService
	logger      *logger.Logger
	devMode     bool
	frontendURL string
}

// NewAuth creates a new Auth handler. In dev mode the forgot-password
// response carries the reset link directly instead of going out by email.
func NewAuth(service AuthService, logger *logger.Logger, devMode bool, frontendURL string) *Auth {
	return &Auth{
		service:     service,
		logger:      logger,
		devMode:     devMode,
		frontendURL: frontendURL,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func (h *Auth) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	err := h.service.Register(c.Context(), service.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "user created"})
}

func (h *Auth) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	tokenString, user, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": tokenString,
		"user":  toUserResponse(user),
	})
}

func (h *Auth) DeleteMe(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token"})
	}

	if err := h.service.DeleteAccount(c.Context(), userID); err != nil {
		h.logger.Error("Auth handler: account deletion failed", "user_id", userID, "error", err.Error())
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "account deleted"})
}

func (h *Auth) ForgotPassword(c fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email is required"})
	}

	rawToken, err := h.service.ForgotPassword(c.Context(), req.Email)
	if err != nil {
		return handleError(c, err)
	}

	resp := fiber.Map{"message": "password reset requested"}
	if h.devMode {
		// Development convenience only. Production delivery goes out of band.
		resp["resetUrl"] = fmt.Sprintf("%s/reset-password?token=%s", h.frontendURL, rawToken)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *Auth) ResetPassword(c fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.ResetPassword(c.Context(), req.Token, req.NewPassword); err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "password reset successfully"})
}
