// Package middleware provides the HTTP middleware shared by every route.
package middleware

import (
	"context"
	"strings"

	"wayfarer/internal/auth"
	"wayfarer/internal/models"
	"wayfarer/internal/observability"

	"github.com/gofiber/fiber/v2"
)

const (
	localUserID   = "userID"
	localIdentity = "identity"
)

// IdentityResolver loads the current identity for a user id. It returns
// (nil, nil) when the user no longer exists.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, userID uint) (*auth.Identity, error)
}

// AuthRequired enforces a valid bearer token whose user still exists.
// On success the resolved identity is available through CurrentIdentity.
func AuthRequired(tokens *auth.TokenService, users IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return reject(c, "missing_header", "Authorization header required")
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return reject(c, "bad_format", "Invalid authorization header format")
		}

		claimed, err := tokens.Verify(parts[1])
		if err != nil {
			return reject(c, "invalid_token", "Invalid or expired token")
		}

		identity, err := users.ResolveIdentity(c.UserContext(), claimed.ID)
		if err != nil {
			Logger.ErrorContext(c.UserContext(), "failed to resolve identity",
				"user_id", claimed.ID,
				"error", err,
			)
			return models.RespondWithError(c, models.NewInternalError(err))
		}
		if identity == nil {
			return reject(c, "unknown_user", "User no longer exists")
		}

		c.Locals(localUserID, identity.ID)
		c.Locals(localIdentity, identity)

		ctx := context.WithValue(c.UserContext(), UserIDKey, identity.ID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

func reject(c *fiber.Ctx, reason, message string) error {
	observability.AuthFailures.WithLabelValues(reason).Inc()
	return models.RespondWithError(c, models.NewUnauthenticatedError(message))
}

// CurrentIdentity returns the identity attached by AuthRequired.
func CurrentIdentity(c *fiber.Ctx) (*auth.Identity, bool) {
	identity, ok := c.Locals(localIdentity).(*auth.Identity)
	return identity, ok && identity != nil
}
