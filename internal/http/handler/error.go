package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/slava-del/RTAF/internal/http/middleware"
	"github.com/slava-del/RTAF/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking
// internal details. code is the machine-readable short form, message the
// human-readable safe one.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError maps the service sentinel errors onto the HTTP error
// taxonomy. Unrecognized errors become a generic 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "you do not have access to this resource")
	case errors.Is(err, service.ErrInvalidCredentials):
		return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid username or password")
	case errors.Is(err, service.ErrCredentialsRequired):
		return writeError(c, fiber.StatusBadRequest, "CREDENTIALS_REQUIRED", "username and password are required")
	case errors.Is(err, service.ErrUsernameTaken):
		return writeError(c, fiber.StatusBadRequest, "USERNAME_TAKEN", "username already exists")
	case errors.Is(err, service.ErrOrderIDRequired):
		return writeError(c, fiber.StatusBadRequest, "ORDER_ID_REQUIRED", "order id is required")
	case errors.Is(err, service.ErrOrderIDTaken):
		return writeError(c, fiber.StatusBadRequest, "ORDER_ID_TAKEN", "order id already exists")
	case errors.Is(err, service.ErrStatusRequired):
		return writeError(c, fiber.StatusBadRequest, "STATUS_REQUIRED", "status is required")
	case errors.Is(err, service.ErrInvalidStatus):
		return writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", "unknown order status")
	case errors.Is(err, service.ErrInvalidTransition):
		return writeError(c, fiber.StatusBadRequest, "INVALID_TRANSITION", "status transition not allowed")
	case errors.Is(err, service.ErrFileTooLarge):
		return writeError(c, fiber.StatusBadRequest, "FILE_TOO_LARGE", "file exceeds the maximum allowed size")
	case errors.Is(err, service.ErrInvalidFileType):
		return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_TYPE", "only .xlsx and .docx files are allowed")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses for errors that escape the handlers.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHENTICATED", "authentication required")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "FILE_TOO_LARGE", "request body exceeds the maximum allowed size")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
