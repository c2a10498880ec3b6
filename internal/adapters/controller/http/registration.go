package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/clubhub-app/clubhub/internal/domain/dto"
	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

type registrationView struct {
	ID           string                    `json:"id"`
	EventID      string                    `json:"event_id"`
	UserID       string                    `json:"user_id"`
	Status       entity.RegistrationStatus `json:"status"`
	RegisteredAt time.Time                 `json:"registered_at"`
}

func newRegistrationView(registration *entity.EventRegistration) registrationView {
	return registrationView{
		ID:           registration.ID,
		EventID:      registration.EventID,
		UserID:       registration.UserID,
		Status:       registration.Status,
		RegisteredAt: registration.CreatedAt,
	}
}

type registrantView struct {
	RegistrationID string                    `json:"registration_id"`
	UserID         string                    `json:"user_id"`
	FirstName      string                    `json:"first_name"`
	LastName       string                    `json:"last_name"`
	Email          string                    `json:"email"`
	Status         entity.RegistrationStatus `json:"status"`
	RegisteredAt   time.Time                 `json:"registered_at"`
}

func newRegistrantViews(registrants []dto.EventRegistrant) []registrantView {
	views := make([]registrantView, 0, len(registrants))
	for _, registrant := range registrants {
		views = append(views, registrantView{
			RegistrationID: registrant.RegistrationID,
			UserID:         registrant.UserID,
			FirstName:      registrant.FirstName,
			LastName:       registrant.LastName,
			Email:          registrant.Email,
			Status:         registrant.Status,
			RegisteredAt:   registrant.RegisteredAt,
		})
	}
	return views
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	_, eventID, err := h.eventInClub(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	registration, err := h.registrationService.Register(r.Context(), userID(r), eventID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newRegistrationView(registration))
}

func (h *Handler) cancelRegistration(w http.ResponseWriter, r *http.Request) {
	_, eventID, err := h.eventInClub(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	err = h.registrationService.Cancel(r.Context(), userID(r), eventID, chi.URLParam(r, "registrationID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) approveRegistration(w http.ResponseWriter, r *http.Request) {
	_, eventID, err := h.eventInClub(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	registration, err := h.registrationService.Approve(r.Context(), userID(r), eventID, chi.URLParam(r, "registrationID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newRegistrationView(registration))
}

func (h *Handler) listRegistrations(w http.ResponseWriter, r *http.Request) {
	_, eventID, err := h.eventInClub(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	registrants, err := h.registrationService.Registrants(r.Context(), userID(r), eventID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newRegistrantViews(registrants))
}
