package recycling

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ecosort/ecosort-api/internal/types"
)

type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// SearchLocations handles POST /v1/locations/search.
func (h *Handler) SearchLocations(w http.ResponseWriter, r *http.Request) {
	var req types.SearchLocationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Origin != nil && !validCoordinates(*req.Origin) {
		writeError(w, http.StatusBadRequest, "origin coordinates out of range")
		return
	}
	if req.RadiusMeters < 0 {
		writeError(w, http.StatusBadRequest, "radius must not be negative")
		return
	}

	resp, err := h.service.FindDropOffLocations(r.Context(), req)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Drop-off search failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetLocation handles GET /v1/locations/{id}.
func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	placeID := r.PathValue("id")
	if placeID == "" {
		writeError(w, http.StatusBadRequest, "missing place id")
		return
	}

	details, err := h.service.GetLocationDetails(r.Context(), placeID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			writeError(w, http.StatusNotFound, "place not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "Detail lookup failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, details)
}

func validCoordinates(c types.Coordinates) bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
