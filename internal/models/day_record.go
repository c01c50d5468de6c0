package models

import "time"

type CustomTask struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// DayRecord holds one user's checklist state for one calendar day.
type DayRecord struct {
	ID          uint                 `gorm:"primaryKey" json:"-"`
	Username    string               `gorm:"not null;uniqueIndex:uidx_user_date" json:"username"`
	Date        time.Time            `gorm:"type:date;not null;uniqueIndex:uidx_user_date" json:"date"`
	Tasks       map[string]TaskState `gorm:"serializer:json" json:"tasks"`
	CustomTasks []CustomTask         `gorm:"serializer:json" json:"custom_tasks"`
	CreatedAt   time.Time            `json:"-"`
	UpdatedAt   time.Time            `json:"-"`
}

// Clone deep-copies the mutable parts so callers can edit the copy
// without touching the original.
func (record DayRecord) Clone() DayRecord {
	tasks := make(map[string]TaskState, len(record.Tasks))
	for name, state := range record.Tasks {
		tasks[name] = state
	}
	customTasks := make([]CustomTask, len(record.CustomTasks))
	copy(customTasks, record.CustomTasks)

	record.Tasks = tasks
	record.CustomTasks = customTasks
	return record
}
