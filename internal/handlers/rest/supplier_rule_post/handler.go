package supplier_rule_post

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

	day := entities.Weekday(req.Day)
	ruleModify := entities.SupplierRuleModify{
		SupplierName:      &req.SupplierName,
		Day:               &day,
		AllocatedCapacity: &req.AllocatedCapacity,
		Tolerance:         &req.Tolerance,
		DeliveryEmail:     &req.DeliveryEmail,
	}

	created, err := h.service.CreateRule(r.Context(), ruleModify)
	if err != nil {
		switch {
		case errors.Is(err, supplierrule.ErrMissingRequiredFields),
			errors.Is(err, supplierrule.ErrInvalidSupplierName),
			errors.Is(err, supplierrule.ErrInvalidDay),
			errors.Is(err, supplierrule.ErrInvalidCapacity),
			errors.Is(err, supplierrule.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, supplierrule.ErrNoCapacityConfigured),
			errors.Is(err, supplierrule.ErrAllocationExceedsDayCapacity):
			h.writeValidationError(w, err)
		case errors.Is(err, supplierrule.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := Response{
		ID:                created.ID,
		SupplierName:      created.SupplierName,
		Day:               created.Day.String(),
		AllocatedCapacity: created.AllocatedCapacity,
		Tolerance:         created.Tolerance,
		DeliveryEmail:     created.DeliveryEmail,
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
