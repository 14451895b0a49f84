// Package service holds the business rules behind every HTTP operation.
package service

import (
	"errors"

	"wayfarer/internal/models"
	"wayfarer/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// Error keys reported to clients.
const (
	KeyRegister         = "register_error"
	KeySignIn           = "signin_error"
	KeyInput            = "input_error"
	KeyProfileRequired  = "profile_required_error"
	KeyProfileNotFound  = "profile_not_found"
	KeyNoProfiles       = "no_profiles"
	KeyAddRequiredInfo  = "add_required_info"
	KeyNoProfile        = "no_profile"
	KeyLanguageAdded    = "language_already_added"
	KeyLanguageNotFound = "language_not_found"
	KeyTravelNotFound   = "travel_not_found"
	KeyPostNotFound     = "post_not_found"
	KeyNoPosts          = "no_posts"
	KeyNotAuthorized    = "not_authorized"
	KeyAlreadyLiked     = "already_liked"
	KeyNotLiked         = "not_liked"
	KeyCommentNotFound  = "comment_not_found"
	KeyConcurrentUpdate = "concurrent_update"
)

func errPostNotFound() *models.AppError {
	return models.NewNotFoundError(KeyPostNotFound, "No post found with that ID")
}

func errProfileNotFound() *models.AppError {
	return models.NewNotFoundError(KeyProfileNotFound, "There is no profile for this user")
}

func errAddRequiredInfo() *models.AppError {
	return models.NewNotFoundError(KeyAddRequiredInfo, "Please add your required profile info first")
}

func errNotAuthorized() *models.AppError {
	return models.NewNotAuthorizedError(KeyNotAuthorized, "User not authorized")
}

func errEmailTaken() *models.AppError {
	return models.NewConflictError(KeyRegister, "Email already exists").WithStatus(fiber.StatusBadRequest)
}

func errUsernameTaken() *models.AppError {
	err := models.NewConflictError(KeyProfileRequired, "That username has already been taken.").
		WithStatus(fiber.StatusBadRequest)
	err.Fields = []models.FieldError{{Field: "username", Message: err.Message}}
	return err
}

// firstInvalid reports the first failed rule of in under key, or nil.
func firstInvalid(key string, fields []models.FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return models.NewValidationError(key, fields[0].Message)
}

// fromRepo translates repository errors. AppErrors raised inside a
// mutation callback pass through unchanged.
func fromRepo(err error, notFound func() *models.AppError) error {
	if err == nil {
		return nil
	}

	var appErr *models.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, repository.ErrNotFound) && notFound != nil:
		return notFound()
	case errors.Is(err, repository.ErrConcurrentUpdate):
		return models.NewConflictError(KeyConcurrentUpdate, "The document was modified concurrently, please retry")
	default:
		return models.NewInternalError(err)
	}
}
