package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"pombal/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingJWTSecret = errors.New("missing JWT_SECRET")
	ErrInvalidToken     = errors.New("invalid token")
)

const defaultTokenTTLHours = 24

// JWTIssuer signs and verifies HS256 bearer tokens.
//
// Supported env vars:
//   - JWT_SECRET (required)
//   - JWT_TTL_HOURS (default: 24)
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

var _ interfaces.ITokenIssuer = (*JWTIssuer)(nil)

func NewJWTIssuerFromEnv() (*JWTIssuer, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	ttlHours := defaultTokenTTLHours
	if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			ttlHours = parsed
		}
	}

	return NewJWTIssuer([]byte(secret), time.Duration(ttlHours)*time.Hour), nil
}

func NewJWTIssuer(secret []byte, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{secret: secret, ttl: ttl}
}

func (i *JWTIssuer) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

func (i *JWTIssuer) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
