package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nmakarov/levelup/internal/models"
	"github.com/nmakarov/levelup/internal/services"
)

type exportedDay struct {
	Tasks       map[string]models.TaskState `json:"tasks"`
	CustomTasks []models.CustomTask         `json:"custom_tasks"`
}

// ExportJSON dumps a user's full history keyed by date, in the same
// shape the records are persisted in.
func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	username, err := requireUsername(c)
	if err != nil {
		return serviceError(c, err)
	}

	records, err := handler.checklist.HistoryRecords(username)
	if err != nil {
		return serviceError(c, err)
	}

	payload := make(map[string]exportedDay, len(records))
	for _, record := range records {
		payload[services.DayKey(record.Date, handler.location)] = exportedDay{
			Tasks:       record.Tasks,
			CustomTasks: record.CustomTasks,
		}
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s-history.json", username))
	return c.JSON(payload)
}

// ExportCSV writes one summary row per day: date, grade, completed,
// total.
func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	username, err := requireUsername(c)
	if err != nil {
		return serviceError(c, err)
	}

	summaries, err := handler.checklist.History(username)
	if err != nil {
		return serviceError(c, err)
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write([]string{"date", "grade", "completed", "total"}); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, summary := range summaries {
		row := []string{
			summary.Date,
			string(summary.Grade),
			strconv.Itoa(summary.Completed),
			strconv.Itoa(summary.Total),
		}
		if err := writer.Write(row); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s-history.csv", username))
	return c.Send(output.Bytes())
}
