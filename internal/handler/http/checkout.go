package http

import (
	"encoding/json"
	"net/http"

	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/internal/utils"
	"github.com/autovenda/go-car-market/models"
)

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	sale, err := h.services.CheckoutService.Checkout(r.Context(), req)
	if err != nil {
		log.Err(err).
			Int64("client_id", req.ClientID).
			Int64("vehicle_id", req.VehicleID).
			Msg("checkout failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.CheckoutResponse{
		SaleID:    sale.SaleID,
		VehicleID: sale.VehicleID,
		ValueSold: sale.TotalValue,
	}, http.StatusOK)
}
