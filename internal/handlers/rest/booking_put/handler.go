package booking_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"yardbook/internal/entities"
	"yardbook/internal/service/booking"
	"yardbook/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bookingModify := entities.BookingModify{
		ID:   &req.ID,
		Yard: req.Yard,
	}
	if req.Status != nil {
		status := entities.BookingStatusType(*req.Status)
		bookingModify.Status = &status
	}
	if req.BookingDate != nil {
		bookingDate, err := time.Parse(time.DateOnly, *req.BookingDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		bookingModify.BookingDate = &bookingDate
	}

	updated, err := h.service.UpdateBooking(r.Context(), bookingModify)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidBookingID),
			errors.Is(err, booking.ErrMissingRequiredFields),
			errors.Is(err, booking.ErrInvalidStatus),
			errors.Is(err, booking.ErrInvalidBookingDate),
			errors.Is(err, booking.ErrDayNotScheduled):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, booking.ErrBookingNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, booking.ErrBookingCancelled),
			errors.Is(err, booking.ErrCapacityExceeded):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := Response{
		ID:          updated.ID,
		Reference:   updated.Reference,
		BookingDate: updated.BookingDate.Format(time.DateOnly),
		Status:      updated.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
