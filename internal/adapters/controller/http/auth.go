package http

import (
	"net/http"

	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

type signUpRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

type logInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, token, err := h.userService.SignUp(r.Context(), req.Email, req.FirstName, req.LastName, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, authResponse{Token: token, User: newUserView(user)})
}

func (h *Handler) logIn(w http.ResponseWriter, r *http.Request) {
	var req logInRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, token, err := h.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Bad email and bad password look the same to the caller.
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		return
	}
	h.writeJSON(w, http.StatusOK, authResponse{Token: token, User: newUserView(user)})
}

type userView struct {
	ID        string `json:"id"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	StravaUsername     string `json:"strava_username,omitempty"`
	TrailforksUsername string `json:"trailforks_username,omitempty"`
	OutsideUsername    string `json:"outside_username,omitempty"`
	AthlinksUsername   string `json:"athlinks_username,omitempty"`
}

func newUserView(user *entity.User) userView {
	return userView{
		ID:                 user.ID,
		Email:              user.Email,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		StravaUsername:     user.StravaUsername(),
		TrailforksUsername: user.TrailforksUsername(),
		OutsideUsername:    user.OutsideUsername(),
		AthlinksUsername:   user.AthlinksUsername(),
	}
}
