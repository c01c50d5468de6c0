package api

import (
	"time"

	"github.com/nmakarov/levelup/internal/models"
	"github.com/nmakarov/levelup/internal/services"
)

type Handler struct {
	checklist *services.ChecklistService
	location  *time.Location
	now       func() time.Time
}

func NewHandler(checklist *services.ChecklistService) *Handler {
	return &Handler{
		checklist: checklist,
		location:  checklist.Location(),
		now:       time.Now,
	}
}

// dayView is the response shape for a single day: the merged record
// plus its grade and score.
type dayView struct {
	Date        string                      `json:"date"`
	Tasks       map[string]models.TaskState `json:"tasks"`
	CustomTasks []models.CustomTask         `json:"custom_tasks"`
	Grade       services.Grade              `json:"grade"`
	Completed   int                         `json:"completed"`
	Total       int                         `json:"total"`
}

type todayView struct {
	dayView
	Streak int `json:"streak"`
}

func (handler *Handler) buildDayView(record models.DayRecord) dayView {
	completed, total := services.Score(record)
	return dayView{
		Date:        services.DayKey(record.Date, handler.location),
		Tasks:       record.Tasks,
		CustomTasks: record.CustomTasks,
		Grade:       services.GradeFor(completed, total),
		Completed:   completed,
		Total:       total,
	}
}
