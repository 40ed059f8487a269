package booking_handle

import (
	"context"
	"fmt"

	"yardbook/internal/entities"
	"yardbook/internal/service/notification"
)

type statusMailer interface {
	SendStatusMail(ctx context.Context, bookingID int64) error
}

type StatusHandlerFactory struct {
	mailer statusMailer
}

func NewStatusHandlerFactory(mailer statusMailer) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		mailer: mailer,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.BookingStatusType) (notification.ExecuteFn, error) {
	switch status {
	case entities.BookingConfirmed:
		return f.confirmedHandler, nil
	case entities.BookingRescheduled:
		return f.rescheduledHandler, nil
	case entities.BookingCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", notification.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) confirmedHandler(ctx context.Context, bookingID int64) error {
	if err := f.mailer.SendStatusMail(ctx, bookingID); err != nil {
		return fmt.Errorf("notify confirmed booking %d: %w", bookingID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) rescheduledHandler(ctx context.Context, bookingID int64) error {
	if err := f.mailer.SendStatusMail(ctx, bookingID); err != nil {
		return fmt.Errorf("notify rescheduled booking %d: %w", bookingID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, bookingID int64) error {
	if err := f.mailer.SendStatusMail(ctx, bookingID); err != nil {
		return fmt.Errorf("notify cancelled booking %d: %w", bookingID, err)
	}
	return nil
}
