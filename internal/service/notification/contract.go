//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"yardbook/internal/entities"
)

type BookingService interface {
	GetBooking(ctx context.Context, id int64) (*entities.Booking, error)
}

type SupplierDirectory interface {
	GetByID(ctx context.Context, id int64) (*entities.Supplier, error)
}

type Mailer interface {
	SendBookingStatusMail(ctx context.Context, mail entities.BookingStatusMail) error
}

type (
	ExecuteFn func(ctx context.Context, bookingID int64) error

	HandlerFactory interface {
		GetHandler(status entities.BookingStatusType) (ExecuteFn, error)
	}
)
