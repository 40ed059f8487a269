package product_type_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"yardbook/internal/entities"
	"yardbook/internal/service/producttype"
	"yardbook/pkg/logger"
)

type Request struct {
	Name          string `json:"name"`
	Yard          string `json:"yard"`
	DailyCapacity int64  `json:"daily_capacity"`
	Tolerance     int64  `json:"tolerance"`
}

type Response struct {
	ID int64 `json:"id"`
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
	var req Request
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	typeModify := entities.ProductTypeModify{
		Name:          &req.Name,
		Yard:          &req.Yard,
		DailyCapacity: &req.DailyCapacity,
		Tolerance:     &req.Tolerance,
	}

	id, err := h.service.CreateProductType(r.Context(), typeModify)
	if err != nil {
		switch {
		case errors.Is(err, producttype.ErrMissingRequiredFields),
			errors.Is(err, producttype.ErrInvalidName),
			errors.Is(err, producttype.ErrInvalidCapacity):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, producttype.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := Response{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
