package api

import "github.com/gofiber/fiber/v2"

type customTaskCreateInput struct {
	Name string `json:"name"`
}

type customTaskUpdateInput struct {
	Done bool `json:"done"`
}

// AddCustomTask appends a user-defined task to the day. A name that is
// blank after trimming is dropped silently and the unchanged day is
// returned, matching the checkbox UI the API replaces.
func (handler *Handler) AddCustomTask(c *fiber.Ctx) error {
	username, err := requireUsername(c)
	if err != nil {
		return serviceError(c, err)
	}
	day, err := handler.parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	var payload customTaskCreateInput
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	record, err := handler.checklist.AddCustomTask(username, day, payload.Name, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(handler.buildDayView(record))
}

func (handler *Handler) UpdateCustomTask(c *fiber.Ctx) error {
	username, err := requireUsername(c)
	if err != nil {
		return serviceError(c, err)
	}
	day, err := handler.parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	var payload customTaskUpdateInput
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	record, err := handler.checklist.SetCustomTaskDone(username, day, pathParam(c, "id"), payload.Done, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(handler.buildDayView(record))
}

func (handler *Handler) DeleteCustomTask(c *fiber.Ctx) error {
	username, err := requireUsername(c)
	if err != nil {
		return serviceError(c, err)
	}
	day, err := handler.parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, err := handler.checklist.DeleteCustomTask(username, day, pathParam(c, "id"), handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(handler.buildDayView(record))
}
