package entities

import "time"

type ProductType struct {
	ID            int64
	Name          string
	Yard          string
	DailyCapacity int64
	Tolerance     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ProductTypeModify struct {
	ID            *int64
	Name          *string
	Yard          *string
	DailyCapacity *int64
	Tolerance     *int64
}
