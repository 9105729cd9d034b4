package handler

import (
	"net/http"
	"time"

	"github.com/lifelog/lifelog-service/internal/errs"
)

type eventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	Remind      bool      `json:"remind"`
}

// CreateEvent handles POST /events
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req eventRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	e, err := h.svc.CreateEvent(userID, req.Title, req.Description, req.StartsAt, req.Remind)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, e)
}

// ListEvents handles GET /events?from=RFC3339&to=RFC3339
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	from, err := parseTimeParam(r, "from")
	if err != nil {
		h.handleError(w, err)
		return
	}
	to, err := parseTimeParam(r, "to")
	if err != nil {
		h.handleError(w, err)
		return
	}
	events, err := h.svc.ListEvents(userID, from, to)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

// UpdateEvent handles PUT /events/{id}
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}
	var req eventRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	e, err := h.svc.UpdateEvent(userID, id, req.Title, req.Description, req.StartsAt, req.Remind)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, e)
}

// DeleteEvent handles DELETE /events/{id}
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.svc.DeleteEvent(userID, id); err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseTimeParam(r *http.Request, name string) (time.Time, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, errs.ErrValidation
	}
	return t, nil
}
