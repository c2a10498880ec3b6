package http

import "net/http"

// placesAutocomplete proxies the location autocomplete API. The response
// body is the provider payload, served from cache when possible.
func (h *Handler) placesAutocomplete(w http.ResponseWriter, r *http.Request) {
	payload, err := h.placesService.Autocomplete(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(payload); err != nil {
		h.logger.Errorf("failed to write places response: %v", err)
	}
}
