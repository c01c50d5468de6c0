package api

import "github.com/gofiber/fiber/v2"

// GetHistory lists one summary line per persisted day, most recent
// first: date, grade, completed/total.
func (handler *Handler) GetHistory(c *fiber.Ctx) error {
	username, err := requireUsername(c)
	if err != nil {
		return serviceError(c, err)
	}

	summaries, err := handler.checklist.History(username)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(summaries)
}

func (handler *Handler) GetStreak(c *fiber.Ctx) error {
	username, err := requireUsername(c)
	if err != nil {
		return serviceError(c, err)
	}

	streak, err := handler.checklist.StreakFor(username, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"streak": streak})
}
