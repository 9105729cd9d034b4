package handler

import (
	"net/http"
	"time"
)

// QuoteOfTheDay handles GET /quotes/today
func (h *Handler) QuoteOfTheDay(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.QuoteOfTheDay(time.Now())
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, q)
}
