//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"
	"time"

	"yardbook/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, bookingModifyEntity entities.BookingModify, goods []entities.Goods) (*entities.Booking, error)
	GetByID(ctx context.Context, id int64) (*entities.Booking, error)
	GetBySupplier(ctx context.Context, supplierID int64) ([]entities.Booking, error)
	Update(ctx context.Context, bookingModifyEntity entities.BookingModify) (*entities.Booking, error)

	SumQuantitiesForDate(ctx context.Context, date time.Time, typeIDs []int64) (int64, error)
}

type ScheduleService interface {
	ResolveDayCapacity(ctx context.Context, date time.Time) (entities.DayCapacity, error)
}

type FileStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (url string, err error)
	Delete(ctx context.Context, key string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
