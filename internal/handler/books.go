package handler

import "net/http"

type bookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Status string `json:"status"`
	Rating *int   `json:"rating"`
}

// CreateBook handles POST /books
func (h *Handler) CreateBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req bookRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	b, err := h.svc.CreateBook(userID, req.Title, req.Author, req.Status, req.Rating)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, b)
}

// ListBooks handles GET /books
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	books, err := h.svc.ListBooks(userID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, books)
}

// UpdateBook handles PUT /books/{id}
func (h *Handler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}
	var req bookRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	b, err := h.svc.UpdateBook(userID, id, req.Title, req.Author, req.Status, req.Rating)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, b)
}

// DeleteBook handles DELETE /books/{id}
func (h *Handler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if err := h.svc.DeleteBook(userID, id); err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
