package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/NajatBouz/study-organizer/internal/logger"
	"github.com/NajatBouz/study-organizer/internal/model"
)

const (
	bcryptCost    = 10
	resetTokenLen = 32
	resetTokenTTL = time.Hour

	minPasswordLen = 8
)

// Auth implements registration, login, password reset and account deletion.
type Auth struct {
	userStore    model.UserStore
	fileStore    model.FileStore
	storage      model.Storage
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	fileStore model.FileStore,
	storage model.Storage,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		fileStore:    fileStore,
		storage:      storage,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// RegisterParams carries the registration input.
type RegisterParams struct {
	Email    string
	Password string
	Name     string
}

// Register creates a new user with a bcrypt-hashed password. Duplicate
// emails yield model.ErrConflict.
func (a *Auth) Register(ctx context.Context, params RegisterParams) error {
	a.logger.Debug("Auth service: starting user registration", "email", params.Email)

	if params.Email == "" || params.Password == "" || params.Name == "" {
		return model.NewValidationError("email, password and name are required")
	}
	if _, err := mail.ParseAddress(params.Email); err != nil {
		return model.NewValidationError("invalid email address")
	}
	if len(params.Password) < minPasswordLen {
		return model.NewValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}

	existing, err := a.userStore.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: email already registered", "email", params.Email)
		return model.ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Email:        params.Email,
		Name:         params.Name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := a.userStore.Create(ctx, user); err != nil {
		a.logger.Error("Auth service: failed to create user", "email", params.Email, "error", err.Error())
		// The unique index may still fire between the pre-check and the insert.
		if errors.Is(err, model.ErrConflict) {
			return model.ErrConflict
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered", "email", params.Email)

	return nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, email, password string) (string, model.User, error) {
	a.logger.Debug("Auth service: starting user login", "email", email)

	if email == "" || password == "" {
		return "", model.User{}, model.NewValidationError("email and password are required")
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return "", model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", model.User{}, model.ErrInvalidCredentials
	}

	tokenString, err := a.tokenManager.Generate(user.ID)
	if err != nil {
		return "", model.User{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "user_id", user.ID)

	return tokenString, user, nil
}

// DeleteAccount removes the user and everything they own. Database rows
// cascade through foreign keys; uploaded objects are removed best effort
// before the user row goes away.
func (a *Auth) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	a.logger.Debug("Auth service: deleting account", "user_id", userID)

	files, err := a.fileStore.ListByOwner(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list files for account deletion: %w", err)
	}
	for _, f := range files {
		if err := a.storage.Delete(ctx, f.Key); err != nil {
			a.logger.Error("Auth service: failed to delete object from storage",
				"user_id", userID,
				"key", f.Key,
				"error", err.Error())
		}
	}

	if err := a.userStore.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	a.logger.Info("Auth service: account deleted", "user_id", userID)

	return nil
}

// ForgotPassword stores a hashed single-use reset token on the user and
// returns the raw token for out-of-band delivery. The raw token is never
// logged or persisted.
func (a *Auth) ForgotPassword(ctx context.Context, email string) (string, error) {
	a.logger.Debug("Auth service: password reset requested", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	raw := make([]byte, resetTokenLen)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	rawToken := hex.EncodeToString(raw)

	expiresAt := time.Now().Add(resetTokenTTL)
	if err := a.userStore.UpdateResetToken(ctx, user.ID, hashResetToken(rawToken), expiresAt); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	a.logger.Info("Auth service: reset token issued", "user_id", user.ID)

	return rawToken, nil
}

// ResetPassword replaces the password if the presented token matches a
// stored, unexpired hash. The token is single use: the stored hash is
// cleared together with the password update.
func (a *Auth) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	if rawToken == "" || newPassword == "" {
		return model.NewValidationError("token and new password are required")
	}
	if len(newPassword) < minPasswordLen {
		return model.NewValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}

	user, err := a.userStore.GetByResetTokenHash(ctx, hashResetToken(rawToken))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrInvalidResetToken
		}
		return fmt.Errorf("failed to get user by reset token: %w", err)
	}

	if user.ResetTokenExpiresAt == nil || time.Now().After(*user.ResetTokenExpiresAt) {
		return model.ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.userStore.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	a.logger.Info("Auth service: password reset completed", "user_id", user.ID)

	return nil
}

func hashResetToken(rawToken string) []byte {
	h := sha256.Sum256([]byte(rawToken))
	return h[:]
}
