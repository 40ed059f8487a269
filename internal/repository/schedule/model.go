package schedule

import "time"

type ScheduleDB struct {
	ID            int64
	Week          string
	TotalCapacity int64
	Tolerance     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type RuleDayDB struct {
	ID         int64
	ScheduleID int64
	Date       time.Time
	Capacity   int64
	IsSaved    bool
}
