package handler

import "net/http"

type mealRequest struct {
	Name     string `json:"name"`
	MealType string `json:"meal_type"`
	Calories int    `json:"calories"`
	EatenOn  string `json:"eaten_on"`
}

// CreateMeal handles POST /meals
func (h *Handler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req mealRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	m, err := h.svc.CreateMeal(userID, req.Name, req.MealType, req.Calories, req.EatenOn)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, m)
}

// ListMeals handles GET /meals?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) ListMeals(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	meals, err := h.svc.ListMeals(userID, q.Get("from"), q.Get("to"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, meals)
}

// DeleteMeal handles DELETE /meals/{id}
func (h *Handler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.svc.DeleteMeal(userID, id); err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
