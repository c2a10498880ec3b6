package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/clubhub-app/clubhub/internal/domain/dto"
	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

type membershipView struct {
	ID       string                  `json:"id"`
	UserID   string                  `json:"user_id"`
	ClubID   string                  `json:"club_id"`
	Status   entity.MembershipStatus `json:"status"`
	Role     entity.MembershipRole   `json:"role"`
	JoinedAt time.Time               `json:"joined_at"`
}

func newMembershipView(membership *entity.Membership) membershipView {
	return membershipView{
		ID:       membership.ID,
		UserID:   membership.UserID,
		ClubID:   membership.ClubID,
		Status:   membership.Status,
		Role:     membership.Role,
		JoinedAt: membership.CreatedAt,
	}
}

type clubMemberView struct {
	MembershipID string                  `json:"membership_id"`
	UserID       string                  `json:"user_id"`
	FirstName    string                  `json:"first_name"`
	LastName     string                  `json:"last_name"`
	Email        string                  `json:"email"`
	Status       entity.MembershipStatus `json:"status"`
	Role         entity.MembershipRole   `json:"role"`
	JoinedAt     time.Time               `json:"joined_at"`
}

func newClubMemberViews(members []dto.ClubMember) []clubMemberView {
	views := make([]clubMemberView, 0, len(members))
	for _, m := range members {
		views = append(views, clubMemberView{
			MembershipID: m.MembershipID,
			UserID:       m.UserID,
			FirstName:    m.FirstName,
			LastName:     m.LastName,
			Email:        m.Email,
			Status:       m.Status,
			Role:         m.Role,
			JoinedAt:     m.JoinedAt,
		})
	}
	return views
}

func (h *Handler) joinClub(w http.ResponseWriter, r *http.Request) {
	membership, err := h.membershipService.RequestJoin(r.Context(), userID(r), chi.URLParam(r, "clubID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newMembershipView(membership))
}

func (h *Handler) leaveClub(w http.ResponseWriter, r *http.Request) {
	if err := h.membershipService.Leave(r.Context(), userID(r), chi.URLParam(r, "clubID")); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) approveMembership(w http.ResponseWriter, r *http.Request) {
	membership, err := h.membershipService.Approve(r.Context(), userID(r),
		chi.URLParam(r, "clubID"), chi.URLParam(r, "membershipID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newMembershipView(membership))
}

func (h *Handler) enableMembership(w http.ResponseWriter, r *http.Request) {
	membership, err := h.membershipService.Enable(r.Context(), userID(r),
		chi.URLParam(r, "clubID"), chi.URLParam(r, "membershipID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newMembershipView(membership))
}

func (h *Handler) disableMembership(w http.ResponseWriter, r *http.Request) {
	membership, err := h.membershipService.Disable(r.Context(), userID(r),
		chi.URLParam(r, "clubID"), chi.URLParam(r, "membershipID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newMembershipView(membership))
}

func (h *Handler) removeMembership(w http.ResponseWriter, r *http.Request) {
	err := h.membershipService.Remove(r.Context(), userID(r),
		chi.URLParam(r, "clubID"), chi.URLParam(r, "membershipID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.membershipService.Members(r.Context(), userID(r), chi.URLParam(r, "clubID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newClubMemberViews(members))
}
