package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

// leeway absorbs clock drift between replicas.
const leeway = 30 * time.Second

// JWTManager signs and checks the HS256 tokens that carry a caller's owner
// reference in the subject claim.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager creates a manager. Config validation guarantees a secret
// of at least 32 bytes.
func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

// GenerateAccessToken issues a token for ownerRef valid for the configured TTL.
func (m *JWTManager) GenerateAccessToken(ownerRef string) (string, error) {
	if ownerRef == "" {
		return "", errors.New("auth: empty owner ref")
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   ownerRef,
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken returns the owner ref of a valid token.
func (m *JWTManager) ValidateAccessToken(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("auth: token is empty")
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", fmt.Errorf("auth: parse token: %w", err)
	}
	if claims.Subject == "" {
		return "", errors.New("auth: token has no subject")
	}
	return claims.Subject, nil
}

// ValidateToken backs the HTTP auth middleware; every failure matches
// domain.ErrUnauthenticated.
func (m *JWTManager) ValidateToken(_ context.Context, raw string) (string, error) {
	ref, err := m.ValidateAccessToken(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	return ref, nil
}
