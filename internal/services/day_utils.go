package services

import "time"

const dayKeyLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// DayKey renders a date as the ISO key used for storage and export.
func DayKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(dayKeyLayout)
}

func ParseDayKey(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(dayKeyLayout, raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return DateAtLocation(parsed, location), nil
}
