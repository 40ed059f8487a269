package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"yardbook/internal/entities"
)

type Booking struct {
	repository      Repository
	scheduleService ScheduleService
	fileStore       FileStore
	txManager       TxManager
}

func New(
	repository Repository,
	scheduleService ScheduleService,
	fileStore FileStore,
	txManager TxManager,
) *Booking {
	return &Booking{
		repository:      repository,
		scheduleService: scheduleService,
		fileStore:       fileStore,
		txManager:       txManager,
	}
}

// CreateBooking создаёт бронь по схеме check-and-reserve: вставка брони и
// повторная проверка агрегата идут в одной Serializable-транзакции, так что две
// конкурентные заявки на почти исчерпанный день не могут совместно превысить
// ёмкость — проигравшая откатывается.
func (b *Booking) CreateBooking(
	ctx context.Context,
	supplierID int64,
	yard string,
	bookingDate time.Time,
	goods []entities.Goods,
	attachments []entities.Attachment,
) (*entities.Booking, error) {
	if supplierID <= 0 {
		return nil, ErrInvalidSupplier
	}
	if len(goods) == 0 {
		return nil, ErrMissingRequiredFields
	}

	typeIDs := make([]int64, 0, len(goods))
	for _, g := range goods {
		if g.TypeID <= 0 || g.Quantities <= 0 || g.NumberOfPallets < 0 {
			return nil, fmt.Errorf("%w: type %d", ErrInvalidGoods, g.TypeID)
		}
		typeIDs = append(typeIDs, g.TypeID)
	}

	bookingDate = startOfDay(bookingDate.UTC())
	if bookingDate.Before(startOfDay(time.Now().UTC())) {
		return nil, ErrInvalidBookingDate
	}

	reference := uuid.NewString()
	status := entities.DefaultBookingStatus

	var created *entities.Booking
	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		dayCapacity, err := b.scheduleService.ResolveDayCapacity(ctx, bookingDate)
		if err != nil {
			return fmt.Errorf("resolve day capacity: %w", err)
		}
		if dayCapacity.Capacity <= 0 {
			return ErrDayNotScheduled
		}

		bookingModify := entities.BookingModify{
			Reference:   &reference,
			SupplierID:  &supplierID,
			Yard:        &yard,
			BookingDate: &bookingDate,
			Status:      &status,
		}

		created, err = b.repository.Create(ctx, bookingModify, goods)
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		// Агрегат уже включает только что вставленные строки.
		booked, err := b.repository.SumQuantitiesForDate(ctx, bookingDate, typeIDs)
		if err != nil {
			return fmt.Errorf("verify day aggregate: %w", err)
		}

		ceiling := dayCapacity.Capacity + dayCapacity.Tolerance
		if booked > ceiling {
			return fmt.Errorf("%w: booked %d exceeds %d for %s",
				ErrCapacityExceeded, booked, ceiling, bookingDate.Format(time.DateOnly))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(attachments) == 0 {
		return created, nil
	}

	// Вложения заливаются после коммита: бронь уже существует, частичный сбой
	// загрузки компенсируется удалением уже загруженных объектов и отдаётся
	// вызывающему как ошибка при живой брони.
	urls, err := b.uploadAttachments(ctx, reference, attachments)
	if err != nil {
		return created, fmt.Errorf("%w: %w", ErrAttachmentUpload, err)
	}

	updated, err := b.repository.Update(ctx, entities.BookingModify{
		ID:             &created.ID,
		AttachmentURLs: &urls,
	})
	if err != nil {
		return created, fmt.Errorf("store attachment urls: %w", err)
	}
	return updated, nil
}

func (b *Booking) UpdateBooking(ctx context.Context, bookingModify entities.BookingModify) (*entities.Booking, error) {
	if bookingModify.ID == nil || *bookingModify.ID <= 0 {
		return nil, ErrInvalidBookingID
	}
	if bookingModify.Status == nil && bookingModify.BookingDate == nil && bookingModify.Yard == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if bookingModify.Status != nil && !isValidStatus(*bookingModify.Status) {
		return nil, ErrInvalidStatus
	}

	if bookingModify.BookingDate != nil {
		normalized := startOfDay(bookingModify.BookingDate.UTC())
		if normalized.Before(startOfDay(time.Now().UTC())) {
			return nil, ErrInvalidBookingDate
		}
		bookingModify.BookingDate = &normalized
	}

	var updated *entities.Booking
	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := b.repository.GetByID(ctx, *bookingModify.ID)
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}
		if existing.Status == entities.BookingCancelled {
			return ErrBookingCancelled
		}

		updated, err = b.repository.Update(ctx, bookingModify)
		if err != nil {
			return fmt.Errorf("update booking: %w", err)
		}

		// Перенос на другую дату проходит ту же проверку ёмкости, что и создание.
		if bookingModify.BookingDate == nil {
			return nil
		}

		dayCapacity, err := b.scheduleService.ResolveDayCapacity(ctx, *bookingModify.BookingDate)
		if err != nil {
			return fmt.Errorf("resolve day capacity: %w", err)
		}
		if dayCapacity.Capacity <= 0 {
			return ErrDayNotScheduled
		}

		typeIDs := make([]int64, 0, len(existing.Goods))
		for _, g := range existing.Goods {
			typeIDs = append(typeIDs, g.TypeID)
		}

		booked, err := b.repository.SumQuantitiesForDate(ctx, *bookingModify.BookingDate, typeIDs)
		if err != nil {
			return fmt.Errorf("verify day aggregate: %w", err)
		}

		ceiling := dayCapacity.Capacity + dayCapacity.Tolerance
		if booked > ceiling {
			return fmt.Errorf("%w: booked %d exceeds %d for %s",
				ErrCapacityExceeded, booked, ceiling, bookingModify.BookingDate.Format(time.DateOnly))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (b *Booking) GetBooking(ctx context.Context, id int64) (*entities.Booking, error) {
	if id <= 0 {
		return nil, ErrInvalidBookingID
	}

	bookingEntity, err := b.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return bookingEntity, nil
}

func (b *Booking) GetSupplierBookings(ctx context.Context, supplierID int64) ([]entities.Booking, error) {
	if supplierID <= 0 {
		return nil, ErrInvalidSupplier
	}

	bookings, err := b.repository.GetBySupplier(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("get supplier bookings: %w", err)
	}
	return bookings, nil
}

func (b *Booking) uploadAttachments(ctx context.Context, reference string, attachments []entities.Attachment) ([]string, error) {
	urls := make([]string, 0, len(attachments))
	keys := make([]string, 0, len(attachments))

	for _, attachment := range attachments {
		key := fmt.Sprintf("%s/%s-%s", reference, uuid.NewString(), attachment.Name)

		url, err := b.fileStore.Upload(ctx, key, attachment.ContentType, attachment.Data)
		if err != nil {
			for _, uploadedKey := range keys {
				// компенсация: ошибки удаления уже ничего не меняют
				_ = b.fileStore.Delete(ctx, uploadedKey)
			}
			return nil, fmt.Errorf("upload %s: %w", attachment.Name, err)
		}

		keys = append(keys, key)
		urls = append(urls, url)
	}
	return urls, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
