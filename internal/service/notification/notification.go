package notification

import (
	"context"
	"errors"
	"fmt"

	"yardbook/internal/entities"
)

// Notifier собирает и отправляет письма о статусе брони.
// Вынесен отдельно от Service, чтобы фабрика обработчиков статусов
// могла зависеть от него без цикла.
type Notifier struct {
	bookingService BookingService
	suppliers      SupplierDirectory
	mailer         Mailer
}

func NewNotifier(
	bookingService BookingService,
	suppliers SupplierDirectory,
	mailer Mailer,
) *Notifier {
	return &Notifier{
		bookingService: bookingService,
		suppliers:      suppliers,
		mailer:         mailer,
	}
}

// SendStatusMail отправляет письмо о текущем статусе брони.
// Поставщик без email пропускается молча.
func (n *Notifier) SendStatusMail(ctx context.Context, bookingID int64) error {
	bookingEntity, err := n.bookingService.GetBooking(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	supplier, err := n.suppliers.GetByID(ctx, bookingEntity.SupplierID)
	if err != nil {
		return fmt.Errorf("resolve supplier: %w", err)
	}
	if supplier.Email == "" {
		return nil
	}

	mail := entities.BookingStatusMail{
		Email:        supplier.Email,
		SupplierName: supplier.CompanyName,
		Reference:    bookingEntity.Reference,
		BookingDate:  bookingEntity.BookingDate,
		Status:       bookingEntity.Status,
	}

	if err := n.mailer.SendBookingStatusMail(ctx, mail); err != nil {
		return fmt.Errorf("send booking status mail: %w", err)
	}
	return nil
}

type Service struct {
	bookingService BookingService
	statusFactory  HandlerFactory
}

func New(bookingService BookingService, statusFactory HandlerFactory) *Service {
	return &Service{
		bookingService: bookingService,
		statusFactory:  statusFactory,
	}
}

// ProcessBookingStatusChange обрабатывает событие смены статуса брони из Kafka.
// Статусы без зарегистрированного обработчика просто пропускаются.
func (s *Service) ProcessBookingStatusChange(ctx context.Context, bookingModify entities.BookingModify) (*entities.Booking, error) {
	if bookingModify.ID == nil || bookingModify.Status == nil {
		return nil, ErrMissingRequiredFields
	}

	bookingEntity, err := s.bookingService.GetBooking(ctx, *bookingModify.ID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(*bookingModify.Status)
	if err != nil {
		if errors.Is(err, ErrUndefinedStatus) {
			return bookingEntity, nil
		}
		return bookingEntity, err
	}

	if err := executeFn(ctx, bookingEntity.ID); err != nil {
		return nil, err
	}

	return bookingEntity, nil
}
