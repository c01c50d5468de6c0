package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nmakarov/levelup/internal/models"
)

var (
	ErrUsernameRequired   = errors.New("username is required")
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskKindMismatch   = errors.New("task kind mismatch")
	ErrCustomTaskNotFound = errors.New("custom task not found")
	ErrPastDayImmutable   = errors.New("past day is immutable")
	ErrDayLoadFailed      = errors.New("load day record failed")
	ErrDaySaveFailed      = errors.New("save day record failed")
	ErrDayDeleteFailed    = errors.New("delete day record failed")
	ErrHistoryLoadFailed  = errors.New("load history failed")
)

type DayRecordStore interface {
	FindByUserAndDate(username string, dayStart time.Time) (models.DayRecord, bool, error)
	ListByUser(username string) ([]models.DayRecord, error)
	Create(record *models.DayRecord) error
	Save(record *models.DayRecord) error
	DeleteByUserAndDate(username string, dayStart time.Time) error
}

// DaySummary is one history line: date key, grade and score counts.
type DaySummary struct {
	Date      string `json:"date"`
	Grade     Grade  `json:"grade"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

type ChecklistService struct {
	store    DayRecordStore
	template map[string]models.TaskState
	location *time.Location
	keepDays int
}

func NewChecklistService(store DayRecordStore, template map[string]models.TaskState, location *time.Location, keepDays int) *ChecklistService {
	if location == nil {
		location = time.UTC
	}
	return &ChecklistService{
		store:    store,
		template: template,
		location: location,
		keepDays: keepDays,
	}
}

func (service *ChecklistService) Location() *time.Location {
	return service.location
}

func NormalizeUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if username == "" {
		return "", ErrUsernameRequired
	}
	return username, nil
}

// FetchDay returns the merged view of one day without persisting
// anything: a missing record yields a fresh template copy.
func (service *ChecklistService) FetchDay(username string, day time.Time) (models.DayRecord, error) {
	dayStart := DateAtLocation(day, service.location)
	persisted, found, err := service.store.FindByUserAndDate(username, dayStart)
	if err != nil {
		return models.DayRecord{}, ErrDayLoadFailed
	}

	var source *models.DayRecord
	if found {
		source = &persisted
	}
	merged := MergeTemplate(service.template, source)
	merged.Username = username
	merged.Date = dayStart
	ensureCustomTaskIDs(&merged)
	return merged, nil
}

func (service *ChecklistService) SetTaskProgress(username string, day time.Time, task string, current int, now time.Time) (models.DayRecord, error) {
	return service.mutateDay(username, day, now, func(record *models.DayRecord) error {
		state, exists := record.Tasks[task]
		if !exists {
			return ErrTaskNotFound
		}
		if state.Kind != models.TaskKindCounted {
			return ErrTaskKindMismatch
		}
		record.Tasks[task] = state.WithCurrent(current)
		return nil
	})
}

func (service *ChecklistService) SetTaskDone(username string, day time.Time, task string, done bool, now time.Time) (models.DayRecord, error) {
	return service.mutateDay(username, day, now, func(record *models.DayRecord) error {
		state, exists := record.Tasks[task]
		if !exists {
			return ErrTaskNotFound
		}
		if state.Kind != models.TaskKindBoolean {
			return ErrTaskKindMismatch
		}
		state.Done = done
		record.Tasks[task] = state
		return nil
	})
}

// AddCustomTask appends a custom task with a fresh stable ID. A name
// that is empty after trimming is rejected silently: the day is
// returned unchanged and nothing is persisted.
func (service *ChecklistService) AddCustomTask(username string, day time.Time, name string, now time.Time) (models.DayRecord, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return service.FetchDay(username, day)
	}
	return service.mutateDay(username, day, now, func(record *models.DayRecord) error {
		record.CustomTasks = append(record.CustomTasks, models.CustomTask{
			ID:   uuid.NewString(),
			Name: trimmed,
		})
		return nil
	})
}

func (service *ChecklistService) SetCustomTaskDone(username string, day time.Time, id string, done bool, now time.Time) (models.DayRecord, error) {
	return service.mutateDay(username, day, now, func(record *models.DayRecord) error {
		for i := range record.CustomTasks {
			if record.CustomTasks[i].ID == id {
				record.CustomTasks[i].Done = done
				return nil
			}
		}
		return ErrCustomTaskNotFound
	})
}

// DeleteCustomTask removes one custom task by ID, leaving the order
// and done state of the remaining entries untouched.
func (service *ChecklistService) DeleteCustomTask(username string, day time.Time, id string, now time.Time) (models.DayRecord, error) {
	return service.mutateDay(username, day, now, func(record *models.DayRecord) error {
		for i := range record.CustomTasks {
			if record.CustomTasks[i].ID == id {
				record.CustomTasks = append(record.CustomTasks[:i], record.CustomTasks[i+1:]...)
				return nil
			}
		}
		return ErrCustomTaskNotFound
	})
}

// History returns one summary per persisted day, most recent first.
func (service *ChecklistService) History(username string) ([]DaySummary, error) {
	records, err := service.listHistoryNewestFirst(username)
	if err != nil {
		return nil, err
	}

	summaries := make([]DaySummary, 0, len(records))
	for _, record := range records {
		completed, total := Score(record)
		summaries = append(summaries, DaySummary{
			Date:      DayKey(record.Date, service.location),
			Grade:     GradeFor(completed, total),
			Completed: completed,
			Total:     total,
		})
	}
	return summaries, nil
}

func (service *ChecklistService) HistoryRecords(username string) ([]models.DayRecord, error) {
	return service.listHistoryNewestFirst(username)
}

func (service *ChecklistService) StreakFor(username string, now time.Time) (int, error) {
	records, err := service.store.ListByUser(username)
	if err != nil {
		return 0, ErrHistoryLoadFailed
	}
	return Streak(records, now, service.location), nil
}

func (service *ChecklistService) DeleteDay(username string, day time.Time) error {
	dayStart := DateAtLocation(day, service.location)
	if err := service.store.DeleteByUserAndDate(username, dayStart); err != nil {
		return ErrDayDeleteFailed
	}
	return nil
}

func (service *ChecklistService) mutateDay(username string, day time.Time, now time.Time, edit func(record *models.DayRecord) error) (models.DayRecord, error) {
	dayStart := DateAtLocation(day, service.location)
	today := DateAtLocation(now, service.location)
	if dayStart.Before(today) {
		return models.DayRecord{}, ErrPastDayImmutable
	}

	persisted, found, err := service.store.FindByUserAndDate(username, dayStart)
	if err != nil {
		return models.DayRecord{}, ErrDayLoadFailed
	}

	var source *models.DayRecord
	if found {
		source = &persisted
	}
	record := MergeTemplate(service.template, source)
	record.Username = username
	record.Date = dayStart
	ensureCustomTaskIDs(&record)

	if err := edit(&record); err != nil {
		return models.DayRecord{}, err
	}

	if found {
		if err := service.store.Save(&record); err != nil {
			return models.DayRecord{}, ErrDaySaveFailed
		}
	} else {
		if err := service.store.Create(&record); err != nil {
			return models.DayRecord{}, ErrDaySaveFailed
		}
	}

	if err := service.pruneHistory(username); err != nil {
		return models.DayRecord{}, err
	}
	return record, nil
}

func (service *ChecklistService) pruneHistory(username string) error {
	if service.keepDays <= 0 {
		return nil
	}

	records, err := service.store.ListByUser(username)
	if err != nil {
		return ErrHistoryLoadFailed
	}
	dates := make([]time.Time, 0, len(records))
	for _, record := range records {
		dates = append(dates, DateAtLocation(record.Date, service.location))
	}

	for _, stale := range PruneDates(dates, service.keepDays) {
		if err := service.store.DeleteByUserAndDate(username, stale); err != nil {
			return ErrDayDeleteFailed
		}
	}
	return nil
}

func (service *ChecklistService) listHistoryNewestFirst(username string) ([]models.DayRecord, error) {
	records, err := service.store.ListByUser(username)
	if err != nil {
		return nil, ErrHistoryLoadFailed
	}
	sortRecordsNewestFirst(records)
	return records, nil
}
