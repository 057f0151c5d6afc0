package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/internal/utils"
	"github.com/autovenda/go-car-market/models"
)

func (h *Handler) registerVehicle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	vehicle, err := h.services.InventoryService.RegisterVehicle(r.Context(), req)
	if err != nil {
		log.Err(err).Int64("seller_id", req.SellerID).Msg("vehicle registration failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.RegisterVehicleResponse{VehicleID: vehicle.VehicleID}, http.StatusOK)
}

func (h *Handler) listAvailableVehicles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var filter models.VehicleFilter
	filter.Mark = r.URL.Query().Get("mark")

	if rawMinPrice := r.URL.Query().Get("minPrice"); rawMinPrice != "" {
		minPrice, err := strconv.ParseFloat(rawMinPrice, 64)
		if err != nil {
			log.Err(err).Str("minPrice", rawMinPrice).Msg("invalid minPrice query param")
			http.Error(w, "invalid minPrice", http.StatusBadRequest)
			return
		}
		filter.MinPrice = &minPrice
	}

	vehicles, err := h.services.InventoryService.ListAvailable(r.Context(), filter)
	if err != nil {
		log.Err(err).Msg("available vehicles listing failed")
		writeError(w, err)
		return
	}

	// an empty result is a valid listing, not an error
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}

	utils.WriteJSON(w, vehicles, http.StatusOK)
}

func (h *Handler) listCompanies(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	companies, err := h.services.InventoryService.ListCompanies(r.Context())
	if err != nil {
		log.Err(err).Msg("companies listing failed")
		writeError(w, err)
		return
	}

	if companies == nil {
		companies = []models.CompanyProfile{}
	}

	utils.WriteJSON(w, companies, http.StatusOK)
}
