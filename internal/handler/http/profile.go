package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/internal/utils"
	"github.com/autovenda/go-car-market/models"
	"github.com/go-chi/chi/v5"
)

// userIDFromURL parses the {userId} route parameter. A non-numeric or
// non-positive value is a client error.
func userIDFromURL(r *http.Request) (int64, bool) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil || userID <= 0 {
		return 0, false
	}
	return userID, true
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromURL(r)
	if !ok {
		log.Error().Str("userId", chi.URLParam(r, "userId")).Msg("invalid user id in url")
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromURL(r)
	if !ok {
		log.Error().Str("userId", chi.URLParam(r, "userId")).Msg("invalid user id in url")
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var req models.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ProfileService.UpdateProfile(r.Context(), userID, req); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
