//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_post_test
package booking_post

import (
	"context"
	"time"

	"yardbook/internal/entities"
	"yardbook/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateBooking(
		ctx context.Context,
		supplierID int64,
		yard string,
		bookingDate time.Time,
		goods []entities.Goods,
		attachments []entities.Attachment,
	) (*entities.Booking, error)
}
