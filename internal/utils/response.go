package utils

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/boardsdb/internal/types"
)

// ErrorBody builds the boundary error payload:
// {statusCode, error, message, errorDetails?}.
func ErrorBody(code int, message string, details []string) fiber.Map {
	body := fiber.Map{
		"statusCode": code,
		"error":      http.StatusText(code),
		"message":    message,
	}
	if len(details) > 0 {
		body["errorDetails"] = details
	}
	return body
}

// WriteError maps any error to the boundary payload. Known CustomError
// kinds keep their status and message; everything else is coerced to a
// generic 500 with no internal detail leaked.
func WriteError(c *fiber.Ctx, err error) error {
	if custom, ok := err.(*types.CustomError); ok {
		return c.Status(custom.Code).JSON(ErrorBody(custom.Code, custom.Message, custom.Details))
	}
	if fiberErr, ok := err.(*fiber.Error); ok {
		return c.Status(fiberErr.Code).JSON(ErrorBody(fiberErr.Code, fiberErr.Message, nil))
	}
	code := fiber.StatusInternalServerError
	return c.Status(code).JSON(ErrorBody(code, "An internal server error occurred", nil))
}

// NotFoundRoute is the response for unmatched routes.
func NotFoundRoute(c *fiber.Ctx) error {
	code := fiber.StatusNotFound
	return c.Status(code).JSON(ErrorBody(code, "No such route", nil))
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	StatusCode   int      `json:"statusCode"`
	Error        string   `json:"error"`
	Message      string   `json:"message"`
	ErrorDetails []string `json:"errorDetails,omitempty"`
}
