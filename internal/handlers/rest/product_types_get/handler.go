package product_types_get

import (
	"encoding/json"
	"net/http"

	"yardbook/pkg/logger"
)

type ProductType struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Yard          string `json:"yard"`
	DailyCapacity int64  `json:"daily_capacity"`
	Tolerance     int64  `json:"tolerance"`
}

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
	types, err := h.service.GetProductTypes(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]ProductType, 0, len(types))
	for _, productType := range types {
		response = append(response, ProductType{
			ID:            productType.ID,
			Name:          productType.Name,
			Yard:          productType.Yard,
			DailyCapacity: productType.DailyCapacity,
			Tolerance:     productType.Tolerance,
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
