package supplier_rule_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"yardbook/internal/entities"
	"yardbook/internal/service/supplierrule"
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

	ruleModify := entities.SupplierRuleModify{
		ID:                &req.ID,
		SupplierName:      req.SupplierName,
		AllocatedCapacity: req.AllocatedCapacity,
		Tolerance:         req.Tolerance,
		DeliveryEmail:     req.DeliveryEmail,
	}
	if req.Day != nil {
		day := entities.Weekday(*req.Day)
		ruleModify.Day = &day
	}

	updated, err := h.service.UpdateRule(r.Context(), ruleModify)
	if err != nil {
		switch {
		case errors.Is(err, supplierrule.ErrMissingRequiredFields),
			errors.Is(err, supplierrule.ErrInvalidRuleID),
			errors.Is(err, supplierrule.ErrInvalidSupplierName),
			errors.Is(err, supplierrule.ErrInvalidDay),
			errors.Is(err, supplierrule.ErrInvalidCapacity),
			errors.Is(err, supplierrule.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, supplierrule.ErrNoCapacityConfigured),
			errors.Is(err, supplierrule.ErrAllocationExceedsDayCapacity):
			h.writeValidationError(w, err)
		case errors.Is(err, supplierrule.ErrRuleNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, supplierrule.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := Response{
		ID:                updated.ID,
		SupplierName:      updated.SupplierName,
		Day:               updated.Day.String(),
		AllocatedCapacity: updated.AllocatedCapacity,
		Tolerance:         updated.Tolerance,
		DeliveryEmail:     updated.DeliveryEmail,
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

func (h *Handler) writeValidationError(w http.ResponseWriter, cause error) {
	response := ValidationErrorResponse{
		Message: cause.Error(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
