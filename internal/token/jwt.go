package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/NajatBouz/study-organizer/internal/model"
)

// Claims represents JWT claims carrying the authenticated user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
}

// DefaultTTL is the bearer token lifetime used when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// NewJWT creates a new JWT token manager with the provided secret key and
// token lifetime. A zero ttl falls back to DefaultTTL; negative values are
// kept and yield tokens that are already expired.
func NewJWT(secretKey string, ttl time.Duration) model.TokenManager {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &JWT{secretKey: secretKey, ttl: ttl}
}

// Generate creates a signed bearer token embedding the user ID.
func (j *JWT) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse validates the signature and expiry and extracts the user ID.
// Expired tokens yield model.ErrTokenExpired, any other failure
// model.ErrTokenInvalid.
func (j *JWT) Parse(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, model.ErrTokenExpired
		}
		return uuid.Nil, model.ErrTokenInvalid
	}
	if !token.Valid {
		return uuid.Nil, model.ErrTokenInvalid
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, model.ErrTokenInvalid
	}
	return claims.UserID, nil
}
