package server

import (
	"errors"

	"wayfarer/internal/auth"
	"wayfarer/internal/middleware"
	"wayfarer/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 invalid_id response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c,
			models.NewValidationError("invalid_id", "The post ID you provided is invalid."))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parseBody decodes the JSON body into dst. A malformed body is reported
// under key with a 400 and errResponseWritten is returned.
func (s *Server) parseBody(c *fiber.Ctx, dst any, key string) error {
	if err := c.BodyParser(dst); err != nil {
		_ = models.RespondWithError(c, models.NewValidationError(key, "Invalid request body"))
		return errResponseWritten
	}
	return nil
}

// identity returns the caller resolved by AuthRequired.
func (s *Server) identity(c *fiber.Ctx) *auth.Identity {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		// AuthRequired guards every route that calls this.
		panic("server: identity requested on an unauthenticated route")
	}
	return id
}

// respondError writes err as JSON, logging anything that is not a client error.
func (s *Server) respondError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code == models.KindInternal {
		middleware.Logger.ErrorContext(c.UserContext(), "request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
	}
	return models.RespondWithError(c, err)
}

func success(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true})
}
