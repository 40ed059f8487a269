package booking

import "yardbook/internal/entities"

func isValidStatus(status entities.BookingStatusType) bool {
	switch status {
	case entities.BookingPending, entities.BookingConfirmed,
		entities.BookingRescheduled, entities.BookingCancelled:
		return true
	default:
		return false
	}
}
