package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"wayfarer/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolverStub struct {
	resolveFn func(ctx context.Context, userID uint) (*auth.Identity, error)
}

func (s resolverStub) ResolveIdentity(ctx context.Context, userID uint) (*auth.Identity, error) {
	return s.resolveFn(ctx, userID)
}

func TestAuthRequired(t *testing.T) {
	secret := "test-secret-key-12345678901234567890123456789012"
	tokens, err := auth.NewTokenService(secret, 2*time.Hour)
	require.NoError(t, err)

	resolver := resolverStub{resolveFn: func(_ context.Context, userID uint) (*auth.Identity, error) {
		switch userID {
		case 123:
			return &auth.Identity{ID: 123, Name: "Ann", Email: "ann@x.io"}, nil
		case 500:
			return nil, errors.New("db down")
		default:
			return nil, nil
		}
	}}

	app := fiber.New()
	app.Get("/test", AuthRequired(tokens, resolver), func(c *fiber.Ctx) error {
		identity, ok := CurrentIdentity(c)
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.JSON(fiber.Map{"userID": identity.ID, "name": identity.Name})
	})

	issue := func(userID uint) string {
		s, err := tokens.Issue(auth.Identity{ID: userID, Name: "Ann"})
		require.NoError(t, err)
		return s
	}

	expired := func() string {
		claims := jwt.MapClaims{
			"sub": strconv.FormatUint(123, 10),
			"iss": auth.Issuer,
			"aud": auth.Audience,
			"exp": time.Now().Add(-time.Hour).Unix(),
		}
		s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		return s
	}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedUserID uint
	}{
		{
			name:           "Happy Path",
			authHeader:     "Bearer " + issue(123),
			expectedStatus: http.StatusOK,
			expectedUserID: 123,
		},
		{
			name:           "Missing Header",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid Format",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Bearer Without Token",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Malformed Token",
			authHeader:     "Bearer malformed.token.here",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Expired Token",
			authHeader:     "Bearer " + expired(),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Deleted User",
			authHeader:     "Bearer " + issue(77),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Lookup Failure",
			authHeader:     "Bearer " + issue(500),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

			switch tt.expectedStatus {
			case http.StatusOK:
				assert.Equal(t, float64(tt.expectedUserID), body["userID"])
			case http.StatusUnauthorized:
				assert.Contains(t, body, "unauthorized")
			}
		})
	}
}
