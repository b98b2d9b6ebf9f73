package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/service"
)

// ListResidents returns registry entries, optionally filtered by source
// (?source=internal or ?source=external).
func ListResidents(svc service.ResidentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		source := c.Query("source")
		if source != "" && source != model.SourceInternal && source != model.SourceExternal {
			return writeError(c, fiber.StatusBadRequest, "INVALID_SOURCE", "source must be internal or external")
		}

		residents, err := svc.List(c.UserContext(), source)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(residents)
	}
}

// GetResident returns one registry entry by id.
func GetResident(svc service.ResidentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		resident, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(resident)
	}
}
