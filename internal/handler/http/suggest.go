package http

import (
	"encoding/json"
	"net/http"

	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/internal/utils"
	"github.com/autovenda/go-car-market/models"
)

// suggest asks the car advisor for a recommendation. The endpoint never
// fails on advisor trouble; the service degrades to a fallback text.
func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.Preferences == "" {
		http.Error(w, "preferences must not be empty", http.StatusBadRequest)
		return
	}

	// identity is optional here; anonymous calls are logged without a user
	var userID *int64
	if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
		userID = &id
	}

	suggestion := h.services.AdvisoryService.Suggest(r.Context(), req.Preferences, userID)

	utils.WriteJSON(w, models.SuggestResponse{Suggestion: suggestion}, http.StatusOK)
}
