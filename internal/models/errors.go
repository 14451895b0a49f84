package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorKind classifies an AppError independently of the HTTP status it maps to.
type ErrorKind string

const (
	KindValidation      ErrorKind = "VALIDATION_ERROR"
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindNotAuthorized   ErrorKind = "NOT_AUTHORIZED"
	KindConflict        ErrorKind = "CONFLICT"
	KindUnauthenticated ErrorKind = "UNAUTHENTICATED"
	KindInternal        ErrorKind = "INTERNAL_ERROR"
)

// InternalErrorMessage is the only text a client ever sees for an internal failure.
const InternalErrorMessage = "Something went wrong."

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string
	Message string
}

// AppError represents a custom application error.
//
// Key is the single descriptive JSON key the error is reported under
// (e.g. "post_not_found"), so clients can branch on shape instead of prose.
type AppError struct {
	Code    ErrorKind
	Key     string
	Message string
	Status  int
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithStatus overrides the HTTP status the error is reported with.
func (e *AppError) WithStatus(status int) *AppError {
	e.Status = status
	return e
}

// Predefined error constructors
func NewValidationError(key, message string) *AppError {
	return &AppError{
		Code:    KindValidation,
		Key:     key,
		Message: message,
		Status:  fiber.StatusBadRequest,
	}
}

// NewFieldValidationError reports every failed field, one entry per field.
func NewFieldValidationError(key string, fields []FieldError) *AppError {
	msg := "validation failed"
	if len(fields) > 0 {
		msg = fields[0].Message
	}
	return &AppError{
		Code:    KindValidation,
		Key:     key,
		Message: msg,
		Status:  fiber.StatusBadRequest,
		Fields:  fields,
	}
}

func NewNotFoundError(key, message string) *AppError {
	return &AppError{
		Code:    KindNotFound,
		Key:     key,
		Message: message,
		Status:  fiber.StatusNotFound,
	}
}

func NewNotAuthorizedError(key, message string) *AppError {
	return &AppError{
		Code:    KindNotAuthorized,
		Key:     key,
		Message: message,
		Status:  fiber.StatusUnauthorized,
	}
}

func NewConflictError(key, message string) *AppError {
	return &AppError{
		Code:    KindConflict,
		Key:     key,
		Message: message,
		Status:  fiber.StatusConflict,
	}
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{
		Code:    KindUnauthenticated,
		Key:     "unauthorized",
		Message: message,
		Status:  fiber.StatusUnauthorized,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    KindInternal,
		Key:     "error",
		Message: InternalErrorMessage,
		Status:  fiber.StatusInternalServerError,
		Err:     err,
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == kind
}

// RespondWithError writes err as a JSON body keyed by the error's Key.
// Anything that is not an AppError is reported as an opaque internal error.
func RespondWithError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternalError(err)
	}

	status := appErr.Status
	if status == 0 {
		status = fiber.StatusInternalServerError
	}

	if appErr.Code == KindInternal {
		return c.Status(status).JSON(fiber.Map{"error": InternalErrorMessage})
	}

	if len(appErr.Fields) > 0 {
		body := make([]fiber.Map, 0, len(appErr.Fields))
		for _, f := range appErr.Fields {
			body = append(body, fiber.Map{appErr.Key: f.Message})
		}
		return c.Status(status).JSON(body)
	}

	return c.Status(status).JSON(fiber.Map{appErr.Key: appErr.Message})
}
