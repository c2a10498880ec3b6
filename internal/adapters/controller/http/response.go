package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/clubhub-app/clubhub/internal/domain/common/errorz"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Errorf("failed to encode response: %v", err)
	}
}

// writeError translates domain errors into HTTP responses. Authorization
// failures and missing resources share a 404 so private and disabled
// resources cannot be probed for existence.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errorz.ErrNotFound), errors.Is(err, errorz.ErrForbidden):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: errorz.ErrNotFound.Error()})
	case errors.Is(err, errorz.ErrValidation):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, errorz.ErrEmailTaken),
		errors.Is(err, errorz.ErrAlreadyMember),
		errors.Is(err, errorz.ErrOwnerMembership),
		errors.Is(err, errorz.ErrNotAMember),
		errors.Is(err, errorz.ErrMembersOnly),
		errors.Is(err, errorz.ErrOwnerRegistration),
		errors.Is(err, errorz.ErrAlreadyRegistered),
		errors.Is(err, errorz.ErrEventFull):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		h.logger.Errorf("internal error: %v", err)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
