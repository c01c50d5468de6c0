package services

import "github.com/nmakarov/levelup/internal/models"

type Grade string

const (
	GradeNone  Grade = "-"
	GradeD     Grade = "D"
	GradeC     Grade = "C"
	GradeB     Grade = "B"
	GradeA     Grade = "A"
	GradeS     Grade = "S"
	GradeSPlus Grade = "S+"
)

// Score counts completed default tasks. Custom tasks never affect the
// grade.
func Score(record models.DayRecord) (int, int) {
	total := len(record.Tasks)
	completed := 0
	for _, state := range record.Tasks {
		if state.Complete() {
			completed++
		}
	}
	return completed, total
}

// GradeFor maps a completion fraction to a letter grade. A record with
// no default tasks is ungraded rather than a division by zero.
func GradeFor(completed int, total int) Grade {
	if total == 0 {
		return GradeNone
	}

	fraction := float64(completed) / float64(total)
	switch {
	case fraction < 0.70:
		return GradeD
	case fraction < 0.80:
		return GradeC
	case fraction < 0.90:
		return GradeB
	case fraction < 0.95:
		return GradeA
	case fraction <= 1.0:
		return GradeS
	default:
		// unreachable while Current stays clamped to Target
		return GradeSPlus
	}
}

func GradeOf(record models.DayRecord) Grade {
	completed, total := Score(record)
	return GradeFor(completed, total)
}

// AllTasksComplete reports whether every default task is complete. An
// empty task set never qualifies.
func AllTasksComplete(record models.DayRecord) bool {
	if len(record.Tasks) == 0 {
		return false
	}
	for _, state := range record.Tasks {
		if !state.Complete() {
			return false
		}
	}
	return true
}
