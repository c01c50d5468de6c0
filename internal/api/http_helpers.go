package api

import (
	"errors"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nmakarov/levelup/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps service sentinels onto HTTP statuses. Anything
// unrecognized is treated as a store failure.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUsernameRequired):
		return apiError(c, fiber.StatusBadRequest, "username is required")
	case errors.Is(err, services.ErrTaskNotFound):
		return apiError(c, fiber.StatusNotFound, "task not found")
	case errors.Is(err, services.ErrCustomTaskNotFound):
		return apiError(c, fiber.StatusNotFound, "custom task not found")
	case errors.Is(err, services.ErrTaskKindMismatch):
		return apiError(c, fiber.StatusBadRequest, "task kind mismatch")
	case errors.Is(err, services.ErrPastDayImmutable):
		return apiError(c, fiber.StatusConflict, "past days are read-only")
	default:
		return apiError(c, fiber.StatusInternalServerError, "storage failure")
	}
}

func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func requireUsername(c *fiber.Ctx) (string, error) {
	return services.NormalizeUsername(pathParam(c, "username"))
}

func (handler *Handler) parseDayParam(raw string) (time.Time, error) {
	return services.ParseDayKey(raw, handler.location)
}
