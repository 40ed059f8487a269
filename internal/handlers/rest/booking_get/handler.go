package booking_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bookingEntity, err := h.service.GetBooking(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, booking.ErrInvalidBookingID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(ToBookingDTO(bookingEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func ToBookingDTO(bookingEntity *entities.Booking) Booking {
	goods := make([]GoodsLine, 0, len(bookingEntity.Goods))
	for _, g := range bookingEntity.Goods {
		goods = append(goods, GoodsLine{
			ProductTypeID:   g.TypeID,
			Quantity:        g.Quantities,
			NumberOfPallets: g.NumberOfPallets,
		})
	}

	return Booking{
		ID:             bookingEntity.ID,
		Reference:      bookingEntity.Reference,
		SupplierID:     bookingEntity.SupplierID,
		Yard:           bookingEntity.Yard,
		BookingDate:    bookingEntity.BookingDate.Format(time.DateOnly),
		Status:         bookingEntity.Status.String(),
		Goods:          goods,
		AttachmentURLs: bookingEntity.AttachmentURLs,
	}
}
