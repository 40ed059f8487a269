package supplier_rule_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"yardbook/internal/service/supplierrule"
)

type Handler struct {
	service Service
}

func New(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.DeleteRule(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, supplierrule.ErrInvalidRuleID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, supplierrule.ErrRuleNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
