package handler

import (
	"errors"
	"net/http"

	"github.com/lifelog/lifelog-service/internal/errs"
	"github.com/lifelog/lifelog-service/internal/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	// Username accepts either the username or the email address.
	Username string `json:"username"`
	Password string `json:"password"`
}

type userView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

func publicView(u *models.User) userView {
	return userView{ID: u.ID, Username: u.Username, Email: u.Email}
}

// Register handles POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	user, token, err := h.svc.Register(req.Username, req.Email, req.Password)
	if errors.Is(err, errs.ErrValidation) {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, authResponse{Token: token, User: publicView(user)})
}

// Me handles GET /me, returning the public view of the calling account.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	user, err := h.svc.CurrentUser(userID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, publicView(user))
}

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	user, token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, authResponse{Token: token, User: publicView(user)})
}
