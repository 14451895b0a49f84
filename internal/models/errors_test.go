package models

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "single key",
			err:        NewNotFoundError("post_not_found", "There is no post for this id."),
			wantStatus: fiber.StatusNotFound,
			wantBody:   `{"post_not_found":"There is no post for this id."}`,
		},
		{
			name: "field list",
			err: NewFieldValidationError("profile_required_error", []FieldError{
				{Field: "username", Message: `"username" is required`},
				{Field: "gender", Message: `"gender" is required`},
			}),
			wantStatus: fiber.StatusBadRequest,
			wantBody:   `[{"profile_required_error":"\"username\" is required"},{"profile_required_error":"\"gender\" is required"}]`,
		},
		{
			name:       "status override",
			err:        NewConflictError("already_liked", "User already liked this post").WithStatus(fiber.StatusUnauthorized),
			wantStatus: fiber.StatusUnauthorized,
			wantBody:   `{"already_liked":"User already liked this post"}`,
		},
		{
			name:       "internal error is opaque",
			err:        NewInternalError(errors.New("pq: connection refused")),
			wantStatus: fiber.StatusInternalServerError,
			wantBody:   `{"error":"Something went wrong."}`,
		},
		{
			name:       "plain error is treated as internal",
			err:        errors.New("boom"),
			wantStatus: fiber.StatusInternalServerError,
			wantBody:   `{"error":"Something went wrong."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return RespondWithError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.JSONEq(t, tt.wantBody, string(body))
		})
	}
}

func TestIsKind(t *testing.T) {
	err := NewNotAuthorizedError("not_authorized", "User not authorized")
	assert.True(t, IsKind(err, KindNotAuthorized))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("x"), KindInternal))
}
