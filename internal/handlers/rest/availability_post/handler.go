package availability_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"yardbook/internal/entities"
	"yardbook/internal/service/availability"
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

	requestedGoods := make([]entities.RequestedGoods, 0, len(req.RequestedGoods))
	for _, goods := range req.RequestedGoods {
		requestedGoods = append(requestedGoods, entities.RequestedGoods{
			TypeID:   goods.ProductTypeID,
			Quantity: goods.Quantity,
		})
	}

	window, err := h.service.CheckAvailability(r.Context(), req.RequestingUserID, requestedGoods)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrNoRequestedGoods),
			errors.Is(err, availability.ErrInvalidGoods),
			errors.Is(err, availability.ErrInvalidSupplier):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make(map[string][]DayResult, len(window))
	for date, dayResults := range window {
		results := make([]DayResult, 0, len(dayResults))
		for _, dayResult := range dayResults {
			results = append(results, DayResult{
				RequestedQty:    dayResult.RequestedQty,
				CurrentlyBooked: dayResult.CurrentlyBooked,
				Available:       dayResult.Available,
				Remaining:       dayResult.Remaining,
				MaxCapacity:     dayResult.MaxCapacity,
				Message:         dayResult.Message,
			})
		}
		response[date] = results
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
