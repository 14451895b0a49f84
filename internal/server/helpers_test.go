package server

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wayfarer/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupMockDB creates a GORM *gorm.DB backed by sqlmock that records pings.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return gormDB, mock
}

// --- parseID ---

func TestParseID(t *testing.T) {
	s := &Server{}
	app := fiber.New()
	app.Get("/post/:id", func(c *fiber.Ctx) error {
		id, err := s.parseID(c, "id")
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"id": id})
	})

	tests := []struct {
		path   string
		status int
	}{
		{"/post/42", fiber.StatusOK},
		{"/post/abc", fiber.StatusBadRequest},
		{"/post/0", fiber.StatusBadRequest},
		{"/post/-3", fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestParseBody_Malformed(t *testing.T) {
	s := &Server{}
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var dst struct {
			Text string `json:"text"`
		}
		if err := s.parseBody(c, &dst, "input_error"); err != nil {
			return nil
		}
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":`))
	req.Header.Set("Content-Type", "application/json")
	status, raw := doRaw(t, app, req)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, decode[map[string]string](t, raw), "input_error")
}

func TestRespondError_HidesInternalDetails(t *testing.T) {
	s := &Server{}
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return s.respondError(c, errors.New("pq: connection refused"))
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return s.respondError(c, models.NewNotFoundError("post_not_found", "No post found with that ID"))
	})

	status, raw := doRaw(t, app, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, map[string]string{"error": models.InternalErrorMessage}, decode[map[string]string](t, raw))

	status, raw = doRaw(t, app, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, map[string]string{"post_not_found": "No post found with that ID"}, decode[map[string]string](t, raw))
}

// --- health checks ---

func TestReadinessCheck(t *testing.T) {
	t.Run("database down", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		s := &Server{db: db}
		app := fiber.New()
		app.Get("/health/ready", s.ReadinessCheck)

		status, raw := doRaw(t, app, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, fiber.StatusServiceUnavailable, status)
		body := decode[map[string]any](t, raw)
		assert.Equal(t, "unhealthy", body["status"])
		assert.Equal(t, "unhealthy", body["checks"].(map[string]any)["database"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database up without redis", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectPing()

		s := &Server{db: db}
		app := fiber.New()
		app.Get("/health/ready", s.ReadinessCheck)

		status, raw := doRaw(t, app, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "disabled", decode[map[string]any](t, raw)["checks"].(map[string]any)["redis"])
	})

	t.Run("redis down", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectPing()

		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
		t.Cleanup(func() { _ = rdb.Close() })
		mr.Close()

		s := &Server{db: db, redis: rdb}
		app := fiber.New()
		app.Get("/health/ready", s.ReadinessCheck)

		status, raw := doRaw(t, app, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, fiber.StatusServiceUnavailable, status)
		assert.Equal(t, "unhealthy", decode[map[string]any](t, raw)["checks"].(map[string]any)["redis"])
	})
}

func TestLivenessAndSmokeRoutes(t *testing.T) {
	_, app := newTestApp(t)

	status, _ := call(t, app, fiber.MethodGet, "/health/live", "", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, raw := call(t, app, fiber.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, fiber.StatusOK, status, string(raw))

	status, raw = call(t, app, fiber.MethodGet, "/api/users/test", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, map[string]string{"msg": "This test works"}, decode[map[string]string](t, raw))

	status, _ = call(t, app, fiber.MethodGet, "/metrics", "", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, raw = call(t, app, fiber.MethodGet, "/api/nowhere", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, decode[map[string]string](t, raw), "error")
}

func doRaw(t *testing.T, app *fiber.App, req *http.Request) (int, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestSwaggerDocListsEveryRoute(t *testing.T) {
	_, app := newTestApp(t)

	status, raw := call(t, app, fiber.MethodGet, "/api/swagger/doc.json", "", nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))

	doc := decode[map[string]any](t, raw)
	assert.Equal(t, "/api", doc["basePath"])
	assert.Equal(t, "Wayfarer API", doc["info"].(map[string]any)["title"])

	paths := doc["paths"].(map[string]any)
	for _, p := range []string{
		"/users/test",
		"/users/register",
		"/users/login",
		"/profile/all",
		"/profile/username/{username}",
		"/profile",
		"/profile/required",
		"/profile/info",
		"/profile/info/learning_languages",
		"/profile/info/learning_languages/{id}",
		"/profile/info/travel_plans",
		"/profile/info/travel_plans/{id}",
		"/post/all",
		"/post",
		"/post/{id}",
		"/post/like/{post_id}",
		"/post/unlike/{post_id}",
		"/post/comment/{post_id}",
		"/post/comment/{post_id}/{comment_id}",
	} {
		assert.Contains(t, paths, p)
	}
}
