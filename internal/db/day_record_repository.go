package db

import (
	"time"

	"github.com/nmakarov/levelup/internal/models"
	"gorm.io/gorm"
)

type DayRecordRepository struct {
	database *gorm.DB
}

func NewDayRecordRepository(database *gorm.DB) *DayRecordRepository {
	return &DayRecordRepository{database: database}
}

func (repo *DayRecordRepository) FindByUserAndDate(username string, dayStart time.Time) (models.DayRecord, bool, error) {
	record := models.DayRecord{}
	result := repo.database.
		Where("username = ? AND date = ?", username, dayStart).
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.DayRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DayRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *DayRecordRepository) ListByUser(username string) ([]models.DayRecord, error) {
	records := make([]models.DayRecord, 0)
	if err := repo.database.
		Where("username = ?", username).
		Order("date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *DayRecordRepository) Create(record *models.DayRecord) error {
	return repo.database.Create(record).Error
}

func (repo *DayRecordRepository) Save(record *models.DayRecord) error {
	if record.ID == 0 {
		existing := models.DayRecord{}
		result := repo.database.
			Select("id").
			Where("username = ? AND date = ?", record.Username, record.Date).
			Limit(1).
			Find(&existing)
		if result.Error != nil {
			return result.Error
		}
		record.ID = existing.ID
	}
	return repo.database.Save(record).Error
}

func (repo *DayRecordRepository) DeleteByUserAndDate(username string, dayStart time.Time) error {
	return repo.database.
		Where("username = ? AND date = ?", username, dayStart).
		Delete(&models.DayRecord{}).Error
}
