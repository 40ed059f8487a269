package schedule_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"yardbook/internal/service/schedule"
	"yardbook/pkg/logger"
)

type RuleDay struct {
	Date     string `json:"date"`
	Capacity int64  `json:"capacity"`
	IsSaved  bool   `json:"is_saved"`
}

type Response struct {
	ID            int64     `json:"id"`
	Week          string    `json:"week"`
	TotalCapacity int64     `json:"total_capacity"`
	Tolerance     int64     `json:"tolerance"`
	Days          []RuleDay `json:"days"`
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
	week := mux.Vars(r)["week"]

	scheduleEntity, err := h.service.GetWeek(r.Context(), week)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidWeek):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, schedule.ErrScheduleNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	days := make([]RuleDay, 0, len(scheduleEntity.Days))
	for _, day := range scheduleEntity.Days {
		days = append(days, RuleDay{
			Date:     day.Date.Format(time.DateOnly),
			Capacity: day.Capacity,
			IsSaved:  day.IsSaved,
		})
	}

	response := Response{
		ID:            scheduleEntity.ID,
		Week:          scheduleEntity.Week,
		TotalCapacity: scheduleEntity.TotalCapacity,
		Tolerance:     scheduleEntity.Tolerance,
		Days:          days,
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
