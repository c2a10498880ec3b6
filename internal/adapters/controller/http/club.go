package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

type clubView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Rules       string    `json:"rules"`
	Category    string    `json:"category"`
	Levels      []string  `json:"levels"`
	OwnerID     string    `json:"owner_id"`
	Public      bool      `json:"public"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func newClubView(club *entity.Club) clubView {
	return clubView{
		ID:          club.ID,
		Name:        club.Name,
		Description: club.Description,
		Rules:       club.Rules,
		Category:    club.Category,
		Levels:      club.Levels,
		OwnerID:     club.OwnerID,
		Public:      club.Public,
		Active:      club.Active,
		CreatedAt:   club.CreatedAt,
	}
}

func newClubViews(clubs []entity.Club) []clubView {
	views := make([]clubView, 0, len(clubs))
	for i := range clubs {
		views = append(views, newClubView(&clubs[i]))
	}
	return views
}

type clubRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rules       string   `json:"rules"`
	Category    string   `json:"category"`
	Levels      []string `json:"levels"`
	Public      bool     `json:"public"`
}

// listClubs is the public catalog with search and filters.
func (h *Handler) listClubs(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 50
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	clubs, err := h.clubService.Search(r.Context(), entity.ClubFilter{
		Query:      r.URL.Query().Get("q"),
		Category:   r.URL.Query().Get("category"),
		Level:      r.URL.Query().Get("level"),
		PublicOnly: true,
	}, limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newClubViews(clubs))
}

type clubDetailView struct {
	clubView
	MemberCount int64 `json:"member_count"`
}

func (h *Handler) showClub(w http.ResponseWriter, r *http.Request) {
	club, err := h.clubService.GetVisible(r.Context(), chi.URLParam(r, "clubID"), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	memberCount, err := h.membershipService.ActiveMemberCount(r.Context(), club.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, clubDetailView{
		clubView:    newClubView(club),
		MemberCount: memberCount,
	})
}

func (h *Handler) createClub(w http.ResponseWriter, r *http.Request) {
	var req clubRequest
	if !h.decode(w, r, &req) {
		return
	}

	club, err := h.clubService.Create(r.Context(), userID(r), entity.Club{
		Name:        req.Name,
		Description: req.Description,
		Rules:       req.Rules,
		Category:    req.Category,
		Levels:      req.Levels,
		Public:      req.Public,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newClubView(club))
}

func (h *Handler) updateClub(w http.ResponseWriter, r *http.Request) {
	var req clubRequest
	if !h.decode(w, r, &req) {
		return
	}

	club, err := h.clubService.Update(r.Context(), userID(r), entity.Club{
		ID:          chi.URLParam(r, "clubID"),
		Name:        req.Name,
		Description: req.Description,
		Rules:       req.Rules,
		Category:    req.Category,
		Levels:      req.Levels,
		Public:      req.Public,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newClubView(club))
}

func (h *Handler) deleteClub(w http.ResponseWriter, r *http.Request) {
	if err := h.clubService.Delete(r.Context(), userID(r), chi.URLParam(r, "clubID")); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) enableClub(w http.ResponseWriter, r *http.Request) {
	club, err := h.clubService.Enable(r.Context(), userID(r), chi.URLParam(r, "clubID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newClubView(club))
}

func (h *Handler) disableClub(w http.ResponseWriter, r *http.Request) {
	club, err := h.clubService.Disable(r.Context(), userID(r), chi.URLParam(r, "clubID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newClubView(club))
}

func (h *Handler) myClubs(w http.ResponseWriter, r *http.Request) {
	userClubs, err := h.clubService.UserClubs(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string][]clubView{
		"owned":  newClubViews(userClubs.Owned),
		"member": newClubViews(userClubs.Member),
	})
}
