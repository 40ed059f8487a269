package supplier_rules_get

import (
	"encoding/json"
	"net/http"

	"yardbook/pkg/logger"
)

type SupplierRule struct {
	ID                int64  `json:"id"`
	SupplierName      string `json:"supplier_name"`
	Day               string `json:"day"`
	AllocatedCapacity int64  `json:"allocated_capacity"`
	Tolerance         int64  `json:"tolerance"`
	FreedCapacity     int64  `json:"freed_capacity"`
	DeliveryEmail     string `json:"delivery_email,omitempty"`
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
	rules, err := h.service.GetRules(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]SupplierRule, 0, len(rules))
	for _, rule := range rules {
		response = append(response, SupplierRule{
			ID:                rule.ID,
			SupplierName:      rule.SupplierName,
			Day:               rule.Day.String(),
			AllocatedCapacity: rule.AllocatedCapacity,
			Tolerance:         rule.Tolerance,
			FreedCapacity:     rule.FreedCapacity,
			DeliveryEmail:     rule.DeliveryEmail,
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
