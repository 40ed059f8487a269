package booking_status_changed

import (
	"context"

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
	ProcessBookingStatusChange(ctx context.Context, bookingModify entities.BookingModify) (*entities.Booking, error)
}
