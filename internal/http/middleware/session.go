package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/slava-del/RTAF/internal/auth"
)

// UserIDLocalKey is the key under which the authenticated user's id is stored
// in Fiber's context locals.
const UserIDLocalKey = "user_id"

// Authenticate resolves the session cookie and, when valid, stores the user id
// in context locals. Requests without a valid session pass through untouched;
// RequireAuth decides whether that is acceptable for a given route.
func Authenticate(sessions *auth.Manager, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Next()
		}

		userID, err := sessions.Resolve(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, auth.ErrNoSession) {
				return c.Next()
			}
			return err
		}

		c.Locals(UserIDLocalKey, userID)
		return c.Next()
	}
}

// RequireAuth rejects requests that did not authenticate.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals(UserIDLocalKey).(int64); !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		return c.Next()
	}
}

// UserID returns the authenticated user's id from context locals. The second
// return is false when the request is unauthenticated.
func UserID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(UserIDLocalKey).(int64)
	return id, ok
}
