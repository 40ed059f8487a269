package bookings_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

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
	supplierID, err := strconv.ParseInt(r.URL.Query().Get("supplier_id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bookings, err := h.service.GetSupplierBookings(r.Context(), supplierID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidSupplier):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]Booking, 0, len(bookings))
	for i := range bookings {
		goods := make([]GoodsLine, 0, len(bookings[i].Goods))
		for _, g := range bookings[i].Goods {
			goods = append(goods, GoodsLine{
				ProductTypeID:   g.TypeID,
				Quantity:        g.Quantities,
				NumberOfPallets: g.NumberOfPallets,
			})
		}
		response = append(response, Booking{
			ID:             bookings[i].ID,
			Reference:      bookings[i].Reference,
			SupplierID:     bookings[i].SupplierID,
			Yard:           bookings[i].Yard,
			BookingDate:    bookings[i].BookingDate.Format(time.DateOnly),
			Status:         bookings[i].Status.String(),
			Goods:          goods,
			AttachmentURLs: bookings[i].AttachmentURLs,
		})
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
