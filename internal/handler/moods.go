package handler

import "net/http"

type moodRequest struct {
	Rating   int    `json:"rating"`
	Note     string `json:"note"`
	LoggedOn string `json:"logged_on"`
}

// CreateMoodLog handles POST /moods
func (h *Handler) CreateMoodLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req moodRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	m, err := h.svc.CreateMoodLog(userID, req.Rating, req.Note, req.LoggedOn)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, m)
}

// ListMoodLogs handles GET /moods?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) ListMoodLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	logs, err := h.svc.ListMoodLogs(userID, q.Get("from"), q.Get("to"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

// DeleteMoodLog handles DELETE /moods/{id}
func (h *Handler) DeleteMoodLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.svc.DeleteMoodLog(userID, id); err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
