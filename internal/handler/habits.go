package handler

import "net/http"

type habitRequest struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
}

// CreateHabit handles POST /habits
func (h *Handler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req habitRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	habit, err := h.svc.CreateHabit(userID, req.Name, req.Frequency)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, habit)
}

// ListHabits handles GET /habits
func (h *Handler) ListHabits(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	habits, err := h.svc.ListHabits(userID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, habits)
}

// CompleteHabit handles POST /habits/{id}/complete
func (h *Handler) CompleteHabit(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}
	habit, err := h.svc.CompleteHabit(userID, id)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, habit)
}

// DeleteHabit handles DELETE /habits/{id}
func (h *Handler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.svc.DeleteHabit(userID, id); err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
