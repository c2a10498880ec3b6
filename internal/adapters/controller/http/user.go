package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

// showUser is the public profile: no email, just the display name and
// external profile usernames.
func (h *Handler) showUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Get(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	view := newUserView(user)
	view.Email = ""
	h.writeJSON(w, http.StatusOK, view)
}

type updateProfileRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	StravaURL     string `json:"strava_url"`
	TrailforksURL string `json:"trailforks_url"`
	OutsideURL    string `json:"outside_url"`
	AthlinksURL   string `json:"athlinks_url"`
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID(r), entity.User{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		StravaURL:     req.StravaURL,
		TrailforksURL: req.TrailforksURL,
		OutsideURL:    req.OutsideURL,
		AthlinksURL:   req.AthlinksURL,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newUserView(user))
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Delete(r.Context(), userID(r), userID(r)); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}
