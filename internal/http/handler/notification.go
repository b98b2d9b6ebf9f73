package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slava-del/RTAF/internal/http/middleware"
	"github.com/slava-del/RTAF/internal/service"
)

// ListNotifications returns the caller's notifications.
func ListNotifications(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		items, err := svc.ListByUser(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// MarkNotificationRead marks a single notification as read.
func MarkNotificationRead(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.MarkRead(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusOK)
	}
}

// MarkAllNotificationsRead marks every unread notification of the caller.
func MarkAllNotificationsRead(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		if err := svc.MarkAllRead(c.UserContext(), userID); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusOK)
	}
}
