package services

import (
	"sort"
	"time"

	"github.com/nmakarov/levelup/internal/models"
)

// Streak counts consecutive fully-completed days ending at "today" in
// the given location. A run that does not include today counts as zero.
// Completion uses the same per-task predicate as the scorer.
func Streak(history []models.DayRecord, now time.Time, location *time.Location) int {
	qualifying := make([]time.Time, 0, len(history))
	for _, record := range history {
		if AllTasksComplete(record) {
			qualifying = append(qualifying, DateAtLocation(record.Date, location))
		}
	}
	if len(qualifying) == 0 {
		return 0
	}

	sort.Slice(qualifying, func(i, j int) bool {
		return qualifying[i].Before(qualifying[j])
	})

	today := DateAtLocation(now, location)
	streak := 0
	for i := len(qualifying) - 1; i >= 0; i-- {
		if !qualifying[i].Equal(today.AddDate(0, 0, -streak)) {
			break
		}
		streak++
	}
	return streak
}
