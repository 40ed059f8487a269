package booking

import (
	"time"

	"yardbook/internal/entities"
)

type BookingDB struct {
	ID             int64
	Reference      string
	SupplierID     int64
	Yard           string
	BookingDate    time.Time
	Status         string
	AttachmentURLs []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type GoodsDB struct {
	ID              int64
	BookingID       int64
	TypeID          int64
	Quantities      int64
	NumberOfPallets int64
}

type BookingModifyDB struct {
	ID             *int64
	Reference      *string
	SupplierID     *int64
	Yard           *string
	BookingDate    *time.Time
	Status         *string
	AttachmentURLs *[]string
}

func FromDomainModify(bookingModifyEntity *entities.BookingModify) *BookingModifyDB {
	bookingModifyDB := BookingModifyDB{
		ID:             bookingModifyEntity.ID,
		Reference:      bookingModifyEntity.Reference,
		SupplierID:     bookingModifyEntity.SupplierID,
		Yard:           bookingModifyEntity.Yard,
		BookingDate:    bookingModifyEntity.BookingDate,
		AttachmentURLs: bookingModifyEntity.AttachmentURLs,
	}

	if bookingModifyEntity.Status != nil {
		status := bookingModifyEntity.Status.String()
		bookingModifyDB.Status = &status
	}

	return &bookingModifyDB
}
