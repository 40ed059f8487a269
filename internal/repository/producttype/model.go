package producttype

import (
	"time"

	"yardbook/internal/entities"
)

type ProductTypeDB struct {
	ID            int64
	Name          string
	Yard          string
	DailyCapacity int64
	Tolerance     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ToDomain(typeDB *ProductTypeDB) *entities.ProductType {
	return &entities.ProductType{
		ID:            typeDB.ID,
		Name:          typeDB.Name,
		Yard:          typeDB.Yard,
		DailyCapacity: typeDB.DailyCapacity,
		Tolerance:     typeDB.Tolerance,
		CreatedAt:     typeDB.CreatedAt,
		UpdatedAt:     typeDB.UpdatedAt,
	}
}
