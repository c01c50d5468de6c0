package db

import "gorm.io/gorm"

type Repositories struct {
	DayRecords *DayRecordRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		DayRecords: NewDayRecordRepository(database),
	}
}
