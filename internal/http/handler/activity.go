package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slava-del/RTAF/internal/http/middleware"
	"github.com/slava-del/RTAF/internal/service"
)

// ListActivities returns the caller's audit trail, newest first.
func ListActivities(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		items, err := svc.ListByUser(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}
