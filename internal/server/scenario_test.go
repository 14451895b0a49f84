package server

import (
	"fmt"
	"strings"
	"testing"

	"wayfarer/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_PostLifecycle(t *testing.T) {
	_, app := newTestApp(t)

	status, raw := call(t, app, fiber.MethodPost, "/api/users/register", "", fiber.Map{
		"name": "Alice", "email": "Alice@Example.com", "password": "secret1", "confirmpw": "secret1",
	})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	registered := decode[map[string]any](t, raw)
	assert.Equal(t, "alice@example.com", registered["email"])
	assert.Equal(t, "Alice", registered["name"])
	assert.NotContains(t, registered, "password")

	status, raw = call(t, app, fiber.MethodPost, "/api/users/register", "", fiber.Map{
		"name": "Alice", "email": "ALICE@example.com", "password": "secret1", "confirmpw": "secret1",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, decode[map[string]string](t, raw), "register_error")

	status, raw = call(t, app, fiber.MethodPost, "/api/users/login", "", fiber.Map{
		"email": "alice@example.com", "password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, decode[map[string]string](t, raw), "signin_error")

	status, raw = call(t, app, fiber.MethodPost, "/api/users/login", "", fiber.Map{
		"email": "nobody@example.com", "password": "secret1",
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, decode[map[string]string](t, raw), "signin_error")

	status, raw = call(t, app, fiber.MethodPost, "/api/users/login", "", fiber.Map{
		"email": "ALICE@example.com", "password": "secret1",
	})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	login := decode[map[string]any](t, raw)
	assert.Equal(t, true, login["success"])
	aliceToken := login["token"].(string)
	assert.True(t, strings.HasPrefix(aliceToken, "Bearer "))

	status, raw = call(t, app, fiber.MethodPost, "/api/post", aliceToken, fiber.Map{"text": "Hello world"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, decode[map[string]string](t, raw), "no_profile")

	addProfile(t, app, aliceToken, "Alice")

	status, raw = call(t, app, fiber.MethodPost, "/api/post", aliceToken, fiber.Map{"text": "Hello from Lisbon"})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	post := decode[models.Post](t, raw)
	assert.Equal(t, "alice", post.Username)
	assert.Equal(t, "Alice", post.Name)
	assert.Equal(t, models.GenderFemale, post.Gender)
	postPath := fmt.Sprintf("/%d", post.ID)

	bobToken := signUp(t, app, "Bob", "bob@example.com")
	addProfile(t, app, bobToken, "bob")

	status, raw = call(t, app, fiber.MethodPost, "/api/post/like"+postPath, bobToken, nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Len(t, decode[models.Post](t, raw).Likes, 1)

	status, raw = call(t, app, fiber.MethodPost, "/api/post/like"+postPath, bobToken, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, decode[map[string]string](t, raw), "already_liked")

	status, raw = call(t, app, fiber.MethodDelete, "/api/post"+postPath, bobToken, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, decode[map[string]string](t, raw), "not_authorized")

	status, raw = call(t, app, fiber.MethodPost, "/api/post/comment"+postPath, bobToken, fiber.Map{"text": "Great shot"})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	commented := decode[models.Post](t, raw)
	require.Len(t, commented.Comments, 1)
	assert.Equal(t, "bob", commented.Comments[0].Username)
	commentPath := postPath + "/" + commented.Comments[0].ID

	status, raw = call(t, app, fiber.MethodDelete, "/api/post/comment"+commentPath, aliceToken, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, decode[map[string]string](t, raw), "not_authorized")

	status, raw = call(t, app, fiber.MethodDelete, "/api/post/comment"+postPath+"/missing", bobToken, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, decode[map[string]string](t, raw), "comment_not_found")

	status, raw = call(t, app, fiber.MethodDelete, "/api/post/comment"+commentPath, bobToken, nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Empty(t, decode[models.Post](t, raw).Comments)

	status, raw = call(t, app, fiber.MethodDelete, "/api/post/unlike"+postPath, bobToken, nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Empty(t, decode[models.Post](t, raw).Likes)

	status, raw = call(t, app, fiber.MethodDelete, "/api/post/unlike"+postPath, bobToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, decode[map[string]string](t, raw), "not_liked")

	status, raw = call(t, app, fiber.MethodGet, "/api/post/all", bobToken, nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Len(t, decode[[]models.Post](t, raw), 1)

	status, raw = call(t, app, fiber.MethodDelete, "/api/post"+postPath, aliceToken, nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Equal(t, true, decode[map[string]any](t, raw)["success"])

	status, raw = call(t, app, fiber.MethodGet, "/api/post/all", bobToken, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, decode[map[string]string](t, raw), "no_posts")

	status, raw = call(t, app, fiber.MethodPost, "/api/post/like"+postPath, bobToken, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, decode[map[string]string](t, raw), "post_not_found")
}

func TestScenario_DeletedAccountLosesAccess(t *testing.T) {
	_, app := newTestApp(t)

	token := signUp(t, app, "Carol", "carol@example.com")
	addProfile(t, app, token, "carol")

	status, raw := call(t, app, fiber.MethodPost, "/api/post", token, fiber.Map{"text": "Leaving soon"})
	require.Equal(t, fiber.StatusOK, status, string(raw))

	status, raw = call(t, app, fiber.MethodDelete, "/api/profile", token, nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Equal(t, true, decode[map[string]any](t, raw)["success"])

	status, raw = call(t, app, fiber.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, decode[map[string]string](t, raw), "unauthorized")

	status, raw = call(t, app, fiber.MethodGet, "/api/profile/all", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, decode[map[string]string](t, raw), "no_profiles")

	other := signUp(t, app, "Dave", "dave@example.com")
	status, raw = call(t, app, fiber.MethodGet, "/api/post/all", other, nil)
	assert.Equal(t, fiber.StatusNotFound, status, "posts of a deleted account are removed: %s", raw)
}

func TestScenario_RequiresBearerToken(t *testing.T) {
	_, app := newTestApp(t)
	token := signUp(t, app, "Erin", "erin@example.com")

	tests := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"wrong scheme", strings.Replace(token, "Bearer ", "Token ", 1)},
		{"bare token", strings.TrimPrefix(token, "Bearer ")},
		{"tampered", token + "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, raw := call(t, app, fiber.MethodGet, "/api/post/all", tt.token, nil)
			assert.Equal(t, fiber.StatusUnauthorized, status)
			assert.Contains(t, decode[map[string]string](t, raw), "unauthorized")
		})
	}
}
