package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetToday(c *fiber.Ctx) error {
	username, err := requireUsername(c)
	if err != nil {
		return serviceError(c, err)
	}

	now := handler.now()
	record, err := handler.checklist.FetchDay(username, now)
	if err != nil {
		return serviceError(c, err)
	}
	streak, err := handler.checklist.StreakFor(username, now)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(todayView{
		dayView: handler.buildDayView(record),
		Streak:  streak,
	})
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	username, err := requireUsername(c)
	if err != nil {
		return serviceError(c, err)
	}
	day, err := handler.parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, err := handler.checklist.FetchDay(username, day)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(handler.buildDayView(record))
}

type taskUpdateInput struct {
	Done    *bool `json:"done"`
	Current *int  `json:"current"`
}

// UpdateTask sets either the done flag of a boolean task or the
// current progress of a counted one, depending on the payload.
func (handler *Handler) UpdateTask(c *fiber.Ctx) error {
	username, err := requireUsername(c)
	if err != nil {
		return serviceError(c, err)
	}
	day, err := handler.parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	task := pathParam(c, "task")

	var payload taskUpdateInput
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	now := handler.now()
	switch {
	case payload.Current != nil:
		updated, err := handler.checklist.SetTaskProgress(username, day, task, *payload.Current, now)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(handler.buildDayView(updated))
	case payload.Done != nil:
		updated, err := handler.checklist.SetTaskDone(username, day, task, *payload.Done, now)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(handler.buildDayView(updated))
	default:
		return apiError(c, fiber.StatusBadRequest, "payload must set done or current")
	}
}

func (handler *Handler) DeleteDay(c *fiber.Ctx) error {
	username, err := requireUsername(c)
	if err != nil {
		return serviceError(c, err)
	}
	day, err := handler.parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.checklist.DeleteDay(username, day); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
