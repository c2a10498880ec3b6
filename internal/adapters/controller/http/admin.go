package http

import (
	"net/http"
	"strconv"
)

// listUsers is the admin account listing with pagination.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 50
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	users, err := h.userService.GetWithPagination(r.Context(), limit, offset, "created_at DESC")
	if err != nil {
		h.writeError(w, err)
		return
	}
	total, err := h.userService.Count(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	views := make([]userView, 0, len(users))
	for i := range users {
		views = append(views, newUserView(&users[i]))
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"users": views,
		"total": total,
	})
}

type statsView struct {
	Users  int64 `json:"users"`
	Clubs  int64 `json:"clubs"`
	Events int64 `json:"events"`
}

func (h *Handler) showStats(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.Count(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	clubs, err := h.clubService.Count(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	events, err := h.eventService.Count(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, statsView{Users: users, Clubs: clubs, Events: events})
}
