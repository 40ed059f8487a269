package reservation_reject_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"yardbook/internal/service/restoration"
	"yardbook/pkg/logger"
)

type Request struct {
	Token string `json:"token"`
}

type Response struct {
	SupplierName  string `json:"supplier_name"`
	Day           string `json:"day"`
	FreedCapacity int64  `json:"freed_capacity"`
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

	rule, err := h.service.RejectReservation(r.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, restoration.ErrInvalidToken):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, restoration.ErrRuleNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, restoration.ErrNothingToReject):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := Response{
		SupplierName:  rule.SupplierName,
		Day:           rule.Day.String(),
		FreedCapacity: rule.FreedCapacity,
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
