package types

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// CustomError is the single error taxonomy of the service. Validators and
// ownership checks raise it immediately; handlers let it propagate to the
// boundary error handler, which maps Code to the HTTP status.
type CustomError struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Type    string   `json:"type"`
	Details []string `json:"details,omitempty"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NotFound means the referenced entity does not exist.
func NotFound(message string) *CustomError {
	return &CustomError{
		Code:    fiber.StatusNotFound,
		Message: message,
		Type:    "resource.not_found",
	}
}

// Forbidden means the entity exists but the caller is not its owner.
func Forbidden(message string) *CustomError {
	return &CustomError{
		Code:    fiber.StatusForbidden,
		Message: message,
		Type:    "resource.forbidden",
	}
}

// Unauthenticated means authorization was required but no valid identity
// was present on the request.
func Unauthenticated(message, errorType string) *CustomError {
	return &CustomError{
		Code:    fiber.StatusUnauthorized,
		Message: message,
		Type:    errorType,
	}
}

// Conflict means a unique field collided, e.g. a username already registered.
func Conflict(message string) *CustomError {
	return &CustomError{
		Code:    fiber.StatusConflict,
		Message: message,
		Type:    "resource.conflict",
	}
}

// BadInput means the request payload failed validation. Details carries the
// individual rule violations.
func BadInput(message string, details []string) *CustomError {
	return &CustomError{
		Code:    fiber.StatusUnprocessableEntity,
		Message: message,
		Type:    "validation.input",
		Details: details,
	}
}

// MissingAttachment means the upload endpoint was called without a file part.
func MissingAttachment() *CustomError {
	return &CustomError{
		Code:    fiber.StatusUnprocessableEntity,
		Message: "Missing attachment file",
		Type:    "validation.attachment",
	}
}
