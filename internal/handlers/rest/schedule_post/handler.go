package schedule_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"yardbook/internal/entities"
	"yardbook/internal/service/schedule"
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

	days := make([]entities.DeliveryRuleDayModify, 0, len(req.Days))
	for _, day := range req.Days {
		date, err := time.Parse(time.DateOnly, day.Date)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		days = append(days, entities.DeliveryRuleDayModify{
			Date:     date,
			Capacity: day.Capacity,
			IsSaved:  day.IsSaved,
		})
	}

	scheduleModify := entities.DeliveryScheduleModify{
		Week:          &req.Week,
		TotalCapacity: &req.TotalCapacity,
		Tolerance:     &req.Tolerance,
	}

	result, err := h.service.UpsertWeek(r.Context(), scheduleModify, days)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrMissingRequiredFields),
			errors.Is(err, schedule.ErrInvalidWeek),
			errors.Is(err, schedule.ErrInvalidCapacity),
			errors.Is(err, schedule.ErrEmptyDaySet):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	responseDays := make([]RuleDay, 0, len(result.Days))
	for _, day := range result.Days {
		responseDays = append(responseDays, RuleDay{
			Date:     day.Date.Format(time.DateOnly),
			Capacity: day.Capacity,
			IsSaved:  day.IsSaved,
		})
	}

	response := Response{
		ID:            result.ID,
		Week:          result.Week,
		TotalCapacity: result.TotalCapacity,
		Tolerance:     result.Tolerance,
		Days:          responseDays,
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
