// Package auth provides bearer-token authentication for the admin API.
//
// The admin dashboard logs in once and holds a signed, time-limited JWT;
// every admin route goes through RequireAdmin, which verifies the token and
// places the claims in the request context.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/folioserve/internal/app/system/jsonutil"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MinSecretLength is the minimum accepted signing secret length. Short
// secrets make HS256 tokens forgeable.
const MinSecretLength = 32

// Token errors.
var (
	ErrSecretTooShort = errors.New("token secret must be at least 32 characters")
	ErrInvalidToken   = errors.New("invalid or expired token")
)

// Claims is the payload carried in an admin token.
type Claims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies admin tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
}

// NewTokenManager creates a TokenManager with the given signing secret and
// token lifetime.
func NewTokenManager(secret string, ttl time.Duration, logger *zap.Logger) (*TokenManager, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrSecretTooShort
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
	}, nil
}

// TTL returns the configured token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Issue creates a signed token for the admin account.
func (tm *TokenManager) Issue(adminID primitive.ObjectID, email, name string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		AdminID: adminID.Hex(),
		Email:   email,
		Name:    name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Verify parses and validates a token string, returning its claims.
func (tm *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// AdminObjectID returns the admin's ObjectID, or the zero value if the
// claims hold a malformed id.
func (c *Claims) AdminObjectID() primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(c.AdminID)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}

// ctxKey is the context key type for claims.
type ctxKey struct{}

// CurrentClaims returns the verified claims from the request context.
func CurrentClaims(r *http.Request) (*Claims, bool) {
	c, ok := r.Context().Value(ctxKey{}).(*Claims)
	return c, ok
}

// RequireAdmin is middleware that rejects requests without a valid bearer
// token. On success the claims are available via CurrentClaims.
func (tm *TokenManager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			jsonutil.Unauthorized(w, "Authentication required")
			return
		}

		claims, err := tm.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			tm.logger.Debug("token verification failed",
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			jsonutil.Unauthorized(w, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, withClaims(r, claims))
	})
}

// withClaims returns a shallow copy of r with claims in the context.
func withClaims(r *http.Request, c *Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, c))
}

// WithTestClaims injects claims into the request context for testing.
// It lets handler tests bypass RequireAdmin.
func WithTestClaims(r *http.Request, c *Claims) *http.Request {
	return withClaims(r, c)
}
