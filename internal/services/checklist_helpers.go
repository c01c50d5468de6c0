package services

import (
	"sort"

	"github.com/google/uuid"
	"github.com/nmakarov/levelup/internal/models"
)

// Legacy records identified custom tasks by list position only. Assign
// stable IDs on load so edits can address them safely.
func ensureCustomTaskIDs(record *models.DayRecord) {
	for i := range record.CustomTasks {
		if record.CustomTasks[i].ID == "" {
			record.CustomTasks[i].ID = uuid.NewString()
		}
	}
}

func sortRecordsNewestFirst(records []models.DayRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
}
