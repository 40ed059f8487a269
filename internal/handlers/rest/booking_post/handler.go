package booking_post

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

	bookingDate, err := time.Parse(time.DateOnly, req.BookingDate)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	goods := make([]entities.Goods, 0, len(req.Goods))
	for _, line := range req.Goods {
		goods = append(goods, entities.Goods{
			TypeID:          line.ProductTypeID,
			Quantities:      line.Quantity,
			NumberOfPallets: line.NumberOfPallets,
		})
	}

	attachments := make([]entities.Attachment, 0, len(req.Attachments))
	for _, attachment := range req.Attachments {
		attachments = append(attachments, entities.Attachment{
			Name:        attachment.Name,
			ContentType: attachment.ContentType,
			Data:        attachment.Data,
		})
	}

	created, err := h.service.CreateBooking(r.Context(), req.SupplierID, req.Yard, bookingDate, goods, attachments)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingRequiredFields),
			errors.Is(err, booking.ErrInvalidSupplier),
			errors.Is(err, booking.ErrInvalidBookingDate),
			errors.Is(err, booking.ErrInvalidGoods),
			errors.Is(err, booking.ErrDayNotScheduled):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, booking.ErrCapacityExceeded):
			h.writeCapacityExceeded(w, err)
		case errors.Is(err, booking.ErrAttachmentUpload):
			// Бронь создана, но вложения не загрузились: отдаём бронь и
			// предупреждаем в логе.
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("booking_id", created.ID),
			).Warn("booking created without attachments")
			h.writeCreated(w, created)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeCreated(w, created)
}

func (h *Handler) writeCreated(w http.ResponseWriter, created *entities.Booking) {
	response := Response{
		ID:             created.ID,
		Reference:      created.Reference,
		Status:         created.Status.String(),
		AttachmentURLs: created.AttachmentURLs,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeCapacityExceeded(w http.ResponseWriter, cause error) {
	response := CapacityExceededResponse{
		Message: cause.Error(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusConflict)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
