package services

import "github.com/nmakarov/levelup/internal/models"

// DefaultTemplate is the built-in set of tasks every day starts with.
// A config file may replace it entirely.
func DefaultTemplate() map[string]models.TaskState {
	return map[string]models.TaskState{
		"100 Push-ups":             models.CountedTask(0, 100),
		"10 mins plank":            models.CountedTask(0, 10),
		"100 Squats":               models.CountedTask(0, 100),
		"Drink 8 Glasses of Water": models.CountedTask(0, 8),
		"Read 15 min":              models.BooleanTask(false),
		"Guitar + Singing":         models.BooleanTask(false),
		"Writing":                  models.BooleanTask(false),
		"Draw":                     models.BooleanTask(false),
	}
}

// MergeTemplate unions the template with a persisted record. Persisted
// values win per task name, persisted names missing from the template
// are kept as-is, and custom tasks come entirely from the persisted
// record. Neither input is mutated.
func MergeTemplate(template map[string]models.TaskState, persisted *models.DayRecord) models.DayRecord {
	if persisted == nil {
		fresh := models.DayRecord{
			Tasks:       make(map[string]models.TaskState, len(template)),
			CustomTasks: []models.CustomTask{},
		}
		for name, state := range template {
			fresh.Tasks[name] = state
		}
		return fresh
	}

	merged := persisted.Clone()
	for name, state := range template {
		if _, exists := merged.Tasks[name]; !exists {
			merged.Tasks[name] = state
		}
	}
	return merged
}
