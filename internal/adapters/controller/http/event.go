package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/clubhub-app/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

type eventView struct {
	ID              string    `json:"id"`
	ClubID          string    `json:"club_id"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	LocationName    string    `json:"location_name"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	MaxParticipants int       `json:"max_participants"`
	HasWaitlist     bool      `json:"has_waitlist"`
}

func newEventView(event *entity.Event) eventView {
	return eventView{
		ID:              event.ID,
		ClubID:          event.ClubID,
		Name:            event.Name,
		Location:        event.Location,
		LocationName:    event.LocationName,
		StartsAt:        event.StartsAt,
		EndsAt:          event.EndsAt,
		MaxParticipants: event.MaxParticipants,
		HasWaitlist:     event.HasWaitlist,
	}
}

func newEventViews(events []entity.Event) []eventView {
	views := make([]eventView, 0, len(events))
	for i := range events {
		views = append(views, newEventView(&events[i]))
	}
	return views
}

type eventDetailView struct {
	eventView
	ConfirmedCount int64   `json:"confirmed_count"`
	WaitlistCount  int64   `json:"waitlist_count"`
	AvailableSpots int     `json:"available_spots"`
	Full           bool    `json:"full"`
	ViewerStatus   *string `json:"viewer_status,omitempty"`
}

type eventRequest struct {
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	LocationName    string    `json:"location_name"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	MaxParticipants int       `json:"max_participants"`
	HasWaitlist     bool      `json:"has_waitlist"`
}

// eventInClub verifies the event exists under the club named in the
// path; a mismatch is reported as not found.
func (h *Handler) eventInClub(r *http.Request) (string, string, error) {
	clubID := chi.URLParam(r, "clubID")
	eventID := chi.URLParam(r, "eventID")
	event, err := h.eventService.Get(r.Context(), eventID)
	if err != nil {
		return "", "", err
	}
	if event.ClubID != clubID {
		return "", "", errorz.ErrNotFound
	}
	return clubID, eventID, nil
}

// listEvents returns the club's upcoming and past events, each in its
// spec-mandated order.
func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	club, err := h.clubService.GetVisible(r.Context(), chi.URLParam(r, "clubID"), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}

	upcoming, err := h.eventService.Upcoming(r.Context(), club.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	past, err := h.eventService.Past(r.Context(), club.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string][]eventView{
		"upcoming": newEventViews(upcoming),
		"past":     newEventViews(past),
	})
}

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if !h.decode(w, r, &req) {
		return
	}

	event, err := h.eventService.Create(r.Context(), userID(r), entity.Event{
		ClubID:          chi.URLParam(r, "clubID"),
		Name:            req.Name,
		Location:        req.Location,
		LocationName:    req.LocationName,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		MaxParticipants: req.MaxParticipants,
		HasWaitlist:     req.HasWaitlist,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newEventView(event))
}

func (h *Handler) showEvent(w http.ResponseWriter, r *http.Request) {
	_, eventID, err := h.eventInClub(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	detail, err := h.eventService.Detail(r.Context(), eventID, userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}

	view := eventDetailView{
		eventView:      newEventView(&detail.Event),
		ConfirmedCount: detail.ConfirmedCount,
		WaitlistCount:  detail.WaitlistCount,
		AvailableSpots: detail.AvailableSpots,
		Full:           detail.Full,
	}
	if detail.ViewerStatus != nil {
		status := string(*detail.ViewerStatus)
		view.ViewerStatus = &status
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) updateEvent(w http.ResponseWriter, r *http.Request) {
	_, eventID, err := h.eventInClub(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req eventRequest
	if !h.decode(w, r, &req) {
		return
	}

	event, err := h.eventService.Update(r.Context(), userID(r), entity.Event{
		ID:              eventID,
		Name:            req.Name,
		Location:        req.Location,
		LocationName:    req.LocationName,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		MaxParticipants: req.MaxParticipants,
		HasWaitlist:     req.HasWaitlist,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newEventView(event))
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	_, eventID, err := h.eventInClub(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err = h.eventService.Delete(r.Context(), userID(r), eventID); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}
