package services

import (
	"sort"
	"time"
)

// PruneDates returns the dates to delete so that at most keep most
// recent dates remain. keep <= 0 disables pruning.
func PruneDates(dates []time.Time, keep int) []time.Time {
	if keep <= 0 || len(dates) <= keep {
		return nil
	}

	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	return sorted[:len(sorted)-keep]
}
