package handler

import "net/http"

type workoutRequest struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Intensity       string `json:"intensity"`
	Calories        int    `json:"calories"`
	PerformedOn     string `json:"performed_on"`
}

// CreateWorkout handles POST /workouts
func (h *Handler) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req workoutRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	workout, err := h.svc.CreateWorkout(userID, req.Name, req.DurationMinutes, req.Calories, req.Intensity, req.PerformedOn)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, workout)
}

// ListWorkouts handles GET /workouts?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	workouts, err := h.svc.ListWorkouts(userID, q.Get("from"), q.Get("to"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, workouts)
}

// DeleteWorkout handles DELETE /workouts/{id}
func (h *Handler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.svc.DeleteWorkout(userID, id); err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
