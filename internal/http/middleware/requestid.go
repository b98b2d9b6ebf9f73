package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the key under which the request ID is stored in
	// Fiber's context locals.
	RequestIDLocalKey = "request_id"
)

// RequestID ensures every request carries a request id: an incoming
// X-Request-ID is kept, otherwise a fresh UUID is assigned. The id is made
// available in context locals and echoed on the response header.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}
