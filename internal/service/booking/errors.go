package booking

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidBookingID      = errors.New("invalid booking id")
	ErrInvalidSupplier       = errors.New("invalid supplier")
	ErrInvalidBookingDate    = errors.New("invalid booking date")
	ErrInvalidGoods          = errors.New("invalid goods position")
	ErrInvalidStatus         = errors.New("invalid booking status")

	ErrDayNotScheduled  = errors.New("no delivery capacity scheduled for this date")
	ErrCapacityExceeded = errors.New("day capacity exceeded")
	ErrAttachmentUpload = errors.New("attachment upload failed")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingCancelled = errors.New("booking is cancelled")
	ErrDuplicateBooking = errors.New("booking already exists")
)
